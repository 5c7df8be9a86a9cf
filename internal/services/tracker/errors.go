package tracker

// TrackerError is a custom error type for tracker-related errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoPlayers        TrackerError = "add at least one player"
	ErrNilInput         TrackerError = "input cannot be nil"
	ErrNilConfig        TrackerError = "config cannot be nil"
	ErrNilSessionRepo   TrackerError = "session repository cannot be nil"
	ErrNilUUIDGenerator TrackerError = "UUID generator cannot be nil"
	ErrNilClock         TrackerError = "clock cannot be nil"
)
