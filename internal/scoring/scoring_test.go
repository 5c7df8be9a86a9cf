package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasePoints_ZeroBid(t *testing.T) {
	tests := []struct {
		name     string
		round    int
		won      int
		expected int
	}{
		{"round 1 kept", 1, 0, 10},
		{"round 1 broken", 1, 1, -10},
		{"round 3 kept", 3, 0, 30},
		{"round 3 broken", 3, 2, -30},
		{"round 10 kept", 10, 0, 100},
		{"round 10 broken", 10, 10, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BasePoints(tt.round, 0, tt.won))
		})
	}
}

func TestBasePoints_NonZeroBid(t *testing.T) {
	tests := []struct {
		name     string
		bid      int
		won      int
		expected int
	}{
		{"exact one", 1, 1, 20},
		{"exact five", 5, 5, 100},
		{"over by two", 1, 3, -20},
		{"under by two", 4, 2, -20},
		{"under by four", 4, 0, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// miss penalty is independent of the round number
			assert.Equal(t, tt.expected, BasePoints(1, tt.bid, tt.won))
			assert.Equal(t, tt.expected, BasePoints(7, tt.bid, tt.won))
		})
	}
}

func TestBasePoints_NegativeInputsTreatedAsZero(t *testing.T) {
	assert.Equal(t, BasePoints(3, 0, 0), BasePoints(3, -2, -5))
	assert.Equal(t, BasePoints(3, 0, 2), BasePoints(3, -1, 2))
}

func TestPointsFor_BonusesAreAdditive(t *testing.T) {
	for _, round := range []int{1, 4, 9} {
		for _, bid := range []int{0, 1, 3} {
			for _, won := range []int{0, 2, 3} {
				for _, pirates := range []int{0, 1, 4} {
					base := PointsFor(round, bid, won, 0, false)

					assert.Equal(t, base+PirateBonus*pirates,
						PointsFor(round, bid, won, pirates, false))
					assert.Equal(t, base+PirateBonus*pirates+MermaidBonus,
						PointsFor(round, bid, won, pirates, true))
				}
			}
		}
	}
}

func TestPointsFor_NegativePirateCountIgnored(t *testing.T) {
	assert.Equal(t, PointsFor(2, 1, 1, 0, false), PointsFor(2, 1, 1, -3, false))
}

func TestPointsFor_Examples(t *testing.T) {
	// bid 2, won 2, one pirate, mermaid: 20*2 + 30 + 50
	assert.Equal(t, 120, PointsFor(1, 2, 2, 1, true))

	// round 3 zero-bid kept
	assert.Equal(t, 30, PointsFor(3, 0, 0, 0, false))

	// bid 1, won 3: -10 * |1-3|
	assert.Equal(t, -20, PointsFor(3, 1, 3, 0, false))
}
