package player

import "twentyone/internal/game"

// Player keeps the results of every round played in this process.
type Player struct {
	Name   string
	Wins   int
	Losses int
	Draws  int
	Games  int
}

type Stats struct {
	Name    string
	Wins    int
	Losses  int
	Draws   int
	Games   int
	WinRate float64
}

func New(name string) *Player {
	return &Player{Name: name}
}

func (p *Player) AddWin() {
	p.Wins++
	p.Games++
}

func (p *Player) AddLoss() {
	p.Losses++
	p.Games++
}

func (p *Player) AddDraw() {
	p.Draws++
	p.Games++
}

// Record counts a finished round. Rounds that have not ended are ignored.
func (p *Player) Record(r game.Result) bool {
	switch r {
	case game.ResultPlayerWin:
		p.AddWin()
	case game.ResultDealerWin:
		p.AddLoss()
	case game.ResultTie:
		p.AddDraw()
	default:
		return false
	}
	return true
}

func (p *Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}

func (p *Player) Stats() Stats {
	return Stats{
		Name:    p.Name,
		Wins:    p.Wins,
		Losses:  p.Losses,
		Draws:   p.Draws,
		Games:   p.Games,
		WinRate: p.WinRate(),
	}
}
