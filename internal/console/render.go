package console

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/arcanaland/blackjack/internal/advisor"
	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/event"
	"github.com/arcanaland/blackjack/internal/outcome"
)

const cardsPerLine = 13

// Renderer turns core events into console text
type Renderer struct {
	w          io.Writer
	style      *Style
	showAdvice bool
	width      int

	dealt      int
	holeHidden bool

	red, hidden, hit, stand, score, bold paint
}

// NewRenderer writes to w. width is used for the banner and separators.
func NewRenderer(w io.Writer, style *Style, showAdvice bool, width int) *Renderer {
	return &Renderer{
		w:          w,
		style:      style,
		showAdvice: showAdvice,
		width:      width,
		red:        style.painter("red", colorize.FgRed),
		hidden:     style.painter("hidden", colorize.FgCyan),
		hit:        style.painter("hit", colorize.FgYellow),
		stand:      style.painter("stand", colorize.FgGreen),
		score:      style.painter("score", colorize.Bold),
		bold:       style.painter("", colorize.Bold),
	}
}

// Handle renders a single event; it is an event.Sink
func (r *Renderer) Handle(e event.Event) {
	switch ev := e.(type) {
	case event.RoundStarted:
		r.dealt = 0
		r.holeHidden = false
		fmt.Fprintf(r.w, "\n%s\n", r.bold(fmt.Sprintf("Hand %d", ev.Number)))
	case event.CardDealt:
		r.cardDealt(ev)
	case event.HoleCardRevealed:
		r.holeHidden = false
		fmt.Fprintf(r.w, "\n*Dealer*: %s\n", r.hand(ev.Hand, false))
	case event.DeckReshuffled:
		fmt.Fprintf(r.w, "\n//////New shuffled deck//////\n\n")
	case event.TotalsUpdated:
		r.totals(ev)
	case event.AdvisorObservation:
		if r.showAdvice {
			fmt.Fprintf(r.w, "\n\t%s The dealer upcard is %s.\n", r.bold("ADVISOR observation:"), ev.Category)
		}
	case event.AdvisorRecommendation:
		if r.showAdvice {
			r.advice(ev.Advice)
		}
	case event.RoundResolved:
		r.resolved(ev)
	case event.SessionSummary:
		r.summary(ev)
	}
}

func (r *Renderer) cardDealt(ev event.CardDealt) {
	if ev.Visibility == event.Hidden {
		r.holeHidden = true
	}

	switch r.dealt {
	case 0:
		fmt.Fprintf(r.w, "\nDeal first card\n---------------\n")
	case 2:
		fmt.Fprintf(r.w, "\nDeal second card\n----------------\n")
	case 4:
		if ev.Holder == event.Player {
			fmt.Fprintf(r.w, "\nDealing to player:\n-----------------\n")
		}
	}
	r.dealt++

	if ev.Holder == event.Player {
		fmt.Fprintf(r.w, "+Player+: %s\n", r.hand(ev.Hand, false))
		return
	}
	fmt.Fprintf(r.w, "*Dealer*: %s\n", r.hand(ev.Hand, r.holeHidden))
}

func (r *Renderer) totals(ev event.TotalsUpdated) {
	if ev.Holder == event.Dealer {
		fmt.Fprintf(r.w, "\tDealer score: %s\n", r.score(ev.Score))
		return
	}
	if ev.AceRecounted() {
		fmt.Fprintf(r.w, "\t(Ace counted as 1 to avoid bust)\n")
	}
	if ev.Aces > 0 {
		fmt.Fprintf(r.w, "\tTotals: %s (soft), %d (hard)\n", r.score(ev.Soft), ev.Hard)
	}
	fmt.Fprintf(r.w, "\tCurrent score: %s\n", r.score(ev.Score))
}

func (r *Renderer) advice(a advisor.Advice) {
	p := r.hit
	if a.Action == advisor.Stand {
		p = r.stand
	}
	fmt.Fprintf(r.w, "\t%s %s %s\n",
		r.bold("Advice:"),
		p("You should "+strings.ToUpper(a.Action.String())),
		p(a.Rationale()),
	)
}

var reasonMessages = map[outcome.Reason]string{
	outcome.BothBlackjack:   "Blackjack tie!",
	outcome.DealerBlackjack: "Dealer hit blackjack, you lose.",
	outcome.PlayerBust:      "Bust! You lose.",
	outcome.DealerBust:      "Dealer is bust, you win.",
	outcome.PlayerBlackjack: "Player hit blackjack, you win!",
	outcome.PlayerTwentyOne: "You win!",
	outcome.HigherScore:     "You win.",
	outcome.LowerScore:      "You lose.",
	outcome.EqualScore:      "Game is tied.",
}

func (r *Renderer) resolved(ev event.RoundResolved) {
	switch ev.Reason {
	case outcome.PlayerTwentyOne, outcome.HigherScore, outcome.LowerScore, outcome.EqualScore:
		fmt.Fprintf(r.w, "\nplayer score: %d, dealer score: %d\n", ev.PlayerScore, ev.DealerScore)
	}

	msg := reasonMessages[ev.Reason]
	switch ev.Outcome {
	case outcome.Win:
		msg = r.stand(msg)
	case outcome.Loss:
		msg = r.red(msg)
	}
	fmt.Fprintf(r.w, "\n%s\n", msg)
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("_", r.separatorWidth()))
}

func (r *Renderer) summary(ev event.SessionSummary) {
	if ev.Played == 0 {
		fmt.Fprintln(r.w, "Goodbye!")
		return
	}
	fmt.Fprintf(r.w, "\n\nThanks for playing, you played %d games and your record was\n", ev.Played)
	fmt.Fprintf(r.w, "  Wins: %d\n", ev.Wins)
	fmt.Fprintf(r.w, "Losses: %d\n", ev.Losses)
	fmt.Fprintf(r.w, " Draws: %d\n", ev.Draws)
}

// hand formats the cards, masking the second one when hideHole is set
func (r *Renderer) hand(cards []card.Card, hideHole bool) string {
	parts := make([]string, 0, len(cards))
	for i, c := range cards {
		if hideHole && i == 1 {
			parts = append(parts, "["+r.hidden("??")+"]")
			continue
		}
		parts = append(parts, "["+r.card(c)+"]")
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) card(c card.Card) string {
	suit := c.Suit.Letter()
	if r.style.Unicode {
		suit = c.Suit.Symbol()
	}
	label := c.Rank.String() + suit
	if c.Suit.IsRed() {
		return r.red(label)
	}
	return label
}

// Deck prints cards right aligned, 13 per line
func (r *Renderer) Deck(title string, cards []card.Card) {
	if title != "" {
		fmt.Fprintf(r.w, "%s\n", title)
	}
	for i, c := range cards {
		fmt.Fprintf(r.w, "%4s", c.String())
		if (i+1)%cardsPerLine == 0 {
			fmt.Fprintln(r.w)
		}
	}
	if len(cards)%cardsPerLine != 0 {
		fmt.Fprintln(r.w)
	}
}

// Banner prints the title. Big text is used only on wide colour terminals.
func (r *Renderer) Banner() {
	if r.style.Color && r.style.Unicode && r.width >= 80 {
		title, err := pterm.DefaultBigText.WithLetters(
			putils.LettersFromStringWithStyle("BLACK", pterm.FgBlue.ToStyle()),
			putils.LettersFromStringWithStyle("JACK", pterm.FgRed.ToStyle()),
		).Srender()
		if err == nil {
			fmt.Fprint(r.w, title)
			return
		}
	}

	line := strings.Repeat("=", 32)
	fmt.Fprintf(r.w, "%s\n%s\n%s\n", r.bold(line), r.bold("          BLACKJACK"), r.bold(line))
}

func (r *Renderer) separatorWidth() int {
	if r.width <= 0 || r.width > 29 {
		return 29
	}
	return r.width
}
