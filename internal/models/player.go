package models

// Player represents a registered player in a session
type Player struct {
	// ID is the opaque stable identifier for the player, unique within a session
	ID string `json:"id"`

	// Name is the display name of the player; uniqueness is enforced
	// case-insensitively when players are added
	Name string `json:"name"`

	// Total is the running sum of completed-round point deltas for this player
	Total int `json:"total"`
}
