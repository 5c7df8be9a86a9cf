package models

// Standing represents one row of the ranked standings
type Standing struct {
	// Rank is the 1-based position, highest total first
	Rank int `json:"rank"`

	// Player is the ranked player
	Player *Player `json:"player"`
}
