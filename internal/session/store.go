// Package session holds the session record store and the navigation gate
// that decides, per request, whether a view renders or redirects.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/medhq/hms-api/internal/model"
)

// slotPrefix names the storage slot holding serialized session records.
const slotPrefix = "hms:session:"

// ErrNotFound is returned when no session exists for a token. A corrupt
// stored record is reported the same way: the slot is cleared and the
// caller proceeds as anonymous.
var ErrNotFound = errors.New("session not found")

// Store persists session records between requests. Implementations must
// treat an unparseable stored record as absent and clear it.
type Store interface {
	Save(ctx context.Context, id string, sess *model.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}
