package encyclopedia

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/initials/internal/encyclopedia Client

import (
	"context"
)

// Client defines the interface for looking up an answer by title
type Client interface {
	// LookupTitle checks whether an entry exists for the given title
	LookupTitle(ctx context.Context, input *LookupTitleInput) (*LookupTitleOutput, error)
}
