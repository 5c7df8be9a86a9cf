package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/skullking/internal/repositories/session Repository

import (
	"context"
)

// Repository defines the interface for session persistence. The channel is a
// single opaque key holding one serialized blob for the whole session.
type Repository interface {
	// Save overwrites the persisted session blob
	Save(ctx context.Context, input *SaveInput) error

	// Load retrieves the last-saved blob; ErrSessionNotFound when absent
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}
