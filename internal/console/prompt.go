package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arcanaland/blackjack/internal/round"
)

// Prompter reads player decisions from a line-oriented input. Invalid input
// is re-prompted here and never reaches the game core.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// NextIntent asks for hit or stand. Closed input counts as standing.
func (p *Prompter) NextIntent() (round.Intent, error) {
	fmt.Fprint(p.out, "\nEnter h to hit or s to stand: ")
	for {
		line, ok, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if !ok {
			fmt.Fprintln(p.out)
			return round.Stand, nil
		}

		switch strings.ToLower(line) {
		case "h", "hit":
			return round.Hit, nil
		case "s", "stand":
			return round.Stand, nil
		}
		fmt.Fprint(p.out, "Incorrect input, Enter h to hit or s to stand: ")
	}
}

// PlayAgain asks whether to play a hand; only y or yes plays. Closed input
// counts as no.
func (p *Prompter) PlayAgain(played int) (bool, error) {
	if played == 0 {
		fmt.Fprint(p.out, "\nDo you want to play a hand of blackjack (y to play)? ")
	} else {
		fmt.Fprint(p.out, "\nDo you want to play another hand (y to play)? ")
	}

	line, ok, err := p.readLine()
	if err != nil || !ok {
		return false, err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) readLine() (string, bool, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", false, fmt.Errorf("reading input: %w", err)
		}
		return "", false, nil
	}
	return strings.TrimSpace(p.in.Text()), true, nil
}
