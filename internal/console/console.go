package console

import (
	"bufio"
	"io"
	"log"
	"math/rand"
	"strings"

	"twentyone/internal/config"
	"twentyone/internal/game"
	"twentyone/internal/player"
)

// SessionFunc starts a new round.
type SessionFunc func() (*game.Session, error)

type Console struct {
	cfg     *config.Config
	in      *bufio.Scanner
	render  *Renderer
	player  *player.Player
	logger  *log.Logger
	session SessionFunc
}

type Option func(*Console)

// WithSessions replaces the default shuffled-deck rounds.
func WithSessions(f SessionFunc) Option {
	return func(c *Console) {
		c.session = f
	}
}

func New(cfg *config.Config, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		render: NewRenderer(out, cfg),
		player: player.New("you"),
		logger: log.New(io.Discard, "", 0),
	}
	if cfg.Debug {
		c.logger = log.Default()
	}

	rng := game.NewRand(cfg.Seed)
	c.session = c.shuffled(rng)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) shuffled(rng *rand.Rand) SessionFunc {
	return func() (*game.Session, error) {
		return game.NewSession(game.WithRand(rng), game.WithLogger(c.logger))
	}
}

// Run plays rounds until the player declines another one or input ends.
func (c *Console) Run() error {
	c.logger.Printf("console started (seed %d)", c.cfg.Seed)
	defer func() {
		c.render.Summary(c.player.Stats())
	}()

	for {
		closed, err := c.playRound()
		if err != nil {
			return err
		}
		if closed {
			return nil
		}

		again, ok := c.askPlayAgain()
		if !ok || !again {
			return nil
		}
	}
}

// readToken returns false once input is exhausted.
func (c *Console) readToken() (string, bool) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			c.logger.Printf("failed to read input: %v", err)
		}
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) Stats() player.Stats {
	return c.player.Stats()
}
