package game

// DealerStandThreshold is the hard total at which the house stops drawing.
const DealerStandThreshold = 17

// DealerPolicy decides whether the house draws again. The session only asks
// while the house's hard total is below DealerStandThreshold.
type DealerPolicy interface {
	ShouldHit(player, house Hand) bool
}

// CanDraw reports whether the house is still under the stand floor. Aces
// count as 1 here so a soft hand is not stopped early.
func CanDraw(house Hand) bool {
	return house.HardTotal() < DealerStandThreshold
}

// HousePolicy chases a player who is ahead and stands when ahead. On a tie it
// only draws if cards worth 10 make up more than half of the cards on the table.
type HousePolicy struct{}

func (HousePolicy) ShouldHit(player, house Hand) bool {
	if !CanDraw(house) {
		return false
	}

	playerScore := player.Score()
	houseScore := house.Score()

	switch {
	case houseScore < playerScore:
		return true
	case houseScore > playerScore:
		return false
	}

	bigCards := player.countValue(10) + house.countValue(10)
	onTable := player.Len() + house.Len()
	return bigCards*2 > onTable
}

// DealerPolicyFunc adapts a plain function to DealerPolicy.
type DealerPolicyFunc func(player, house Hand) bool

func (f DealerPolicyFunc) ShouldHit(player, house Hand) bool {
	return f(player, house)
}
