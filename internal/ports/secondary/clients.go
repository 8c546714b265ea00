package secondary

import (
	"context"
	"io"

	"github.com/campushub/backend/internal/domain/dto"
)

// SMTPClient delivers best-effort email copies of inbox notifications.
type SMTPClient interface {
	Send(to, subject, body string) error
}

// ObjectStorage stores uploaded club banners and avatars and returns the
// public URL of the stored object.
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// RepoMetadataFetcher fetches public metadata for a linked GitHub repository.
type RepoMetadataFetcher interface {
	Fetch(ctx context.Context, repoURL string) (*dto.RepoDetails, error)
}

// StateStore keeps short-lived OAuth state tokens.
type StateStore interface {
	Set(ctx context.Context, state string) error
	// Check consumes the state, returning false when it was never issued or
	// already used.
	Check(ctx context.Context, state string) (bool, error)
}

// LeaderboardCache caches serialized leaderboards with a TTL.
type LeaderboardCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
