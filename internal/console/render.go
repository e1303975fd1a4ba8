package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"twentyone/internal/config"
	"twentyone/internal/game"
	"twentyone/internal/player"
)

const rule = "___________________________________________"

type Renderer struct {
	out   io.Writer
	style string

	red  *color.Color
	win  *color.Color
	lose *color.Color
	tie  *color.Color
	dim  *color.Color
}

func NewRenderer(out io.Writer, cfg *config.Config) *Renderer {
	r := &Renderer{
		out:   out,
		style: cfg.SuitStyle,
		red:   color.New(color.FgRed),
		win:   color.New(color.FgGreen, color.Bold),
		lose:  color.New(color.FgRed, color.Bold),
		tie:   color.New(color.FgYellow, color.Bold),
		dim:   color.New(color.Faint),
	}

	for _, c := range []*color.Color{r.red, r.win, r.lose, r.tie, r.dim} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Renderer) card(c game.Card) string {
	if c.FaceDown {
		return game.FaceDownSymbol
	}
	text := c.Label()
	if r.style == config.SuitCodes {
		text = c.Code()
	}
	if c.Suit.Red() {
		return r.red.Sprint(text)
	}
	return text
}

func (r *Renderer) hand(h game.Hand) string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.card(c)
	}
	return strings.Join(parts, " ")
}

// score hides the house total while the hole card is down.
func score(h game.Hand) string {
	if h.HasHidden() {
		return "?"
	}
	return strconv.Itoa(h.Score())
}

func (r *Renderer) Help() {
	r.printf("Press '%s' to get a card (Hit) or '%s' to finish.\n\n", CommandHit, CommandStand)
}

func (r *Renderer) Table(s *game.Session) {
	house, you := s.House(), s.Player()

	r.printf("%s\n\n", rule)
	r.printf("Dealer (%s):\n%s\n\n", score(house), r.hand(house))
	r.printf("You (%s):\n%s\n", score(you), r.hand(you))
}

func (r *Renderer) Invalid() {
	r.printf("Invalid command!\n")
}

func (r *Renderer) DealerTurn() {
	r.printf("It's the dealers turn\n")
}

func (r *Renderer) DealerDraws(c game.Card) {
	r.printf("Dealer draws %s\n", r.card(c))
}

func (r *Renderer) Outcome(s *game.Session) {
	r.Table(s)
	r.printf("\nDealer score: %d\n", s.HouseScore())
	r.printf("Player score: %d\n\n", s.PlayerScore())

	switch s.Result() {
	case game.ResultPlayerWin:
		r.printf("%s\n", r.win.Sprint("You won!"))
	case game.ResultDealerWin:
		r.printf("%s\n", r.lose.Sprint("You lost! Game Over!"))
	case game.ResultTie:
		r.printf("%s\n", r.tie.Sprint("It's a tie!"))
	}
}

func (r *Renderer) PlayAgain() {
	r.printf("\nPlay again? (%s/%s)\n", AnswerYes, AnswerNo)
}

func (r *Renderer) Summary(s player.Stats) {
	if s.Games == 0 {
		return
	}
	r.printf("\n%s\n", r.dim.Sprintf("Games: %d | Wins: %d (%.1f%%) | Losses: %d | Ties: %d",
		s.Games, s.Wins, s.WinRate, s.Losses, s.Draws))
}
