// Package scoring computes per-round point deltas for Skull King.
package scoring

const (
	// ZeroBidStake is the per-round stake for a zero-trick wager
	ZeroBidStake = 10

	// ExactBidReward is the per-trick reward for hitting a non-zero bid exactly
	ExactBidReward = 20

	// MissPenalty is the per-trick penalty for missing a non-zero bid
	MissPenalty = 10

	// PirateBonus is awarded per pirate-capture event
	PirateBonus = 30

	// MermaidBonus is awarded once per round for capturing the mermaid
	MermaidBonus = 50
)

// BasePoints returns the bonus-free points for a round. A zero bid is an
// all-or-nothing wager scaled by the round number; a non-zero bid rewards an
// exact hit and penalizes by the miss distance.
func BasePoints(round, bid, won int) int {
	if bid < 0 {
		bid = 0
	}
	if won < 0 {
		won = 0
	}

	if bid == 0 {
		if won == 0 {
			return ZeroBidStake * round
		}
		return -ZeroBidStake * round
	}

	if won == bid {
		return ExactBidReward * bid
	}

	miss := bid - won
	if miss < 0 {
		miss = -miss
	}
	return -MissPenalty * miss
}

// PointsFor returns the full point delta for one player's round: base points
// plus pirate and mermaid bonuses. Deterministic and total; invalid counts are
// treated as zero and the result is unclamped.
func PointsFor(round, bid, won, pirates int, mermaid bool) int {
	pts := BasePoints(round, bid, won)

	if pirates > 0 {
		pts += PirateBonus * pirates
	}
	if mermaid {
		pts += MermaidBonus
	}

	return pts
}
