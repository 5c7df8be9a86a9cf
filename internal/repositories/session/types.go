package session

import "github.com/KirkDiggler/skullking/internal/models"

type SaveInput struct {
	Session *models.Session
}

type LoadInput struct {
}

type LoadOutput struct {
	// Raw is the persisted blob as stored; callers run it through the
	// normalizer rather than trusting its shape
	Raw []byte
}
