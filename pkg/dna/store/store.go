// Package store defines persistence for extracted Brand DNA profiles.
//
// The extraction engine itself never touches a store; persistence is a
// caller-side concern for consumers that want to cache profiles between
// runs.
package store

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/brandlens/dna/pkg/dna"
)

// Profile is a stored extraction result keyed by the source it was
// extracted from (a site name, a client identifier...).
type Profile struct {
	ID        string
	Source    string
	CreatedAt time.Time
	DNA       dna.BrandDNA
}

// Store persists and retrieves profiles.
type Store interface {
	Close() error

	// SaveProfile inserts or replaces the profile for its source.
	SaveProfile(ctx context.Context, p Profile) error

	// GetProfile returns a profile by ID. Returns a wrapped
	// internalerr.ErrNotFound when absent.
	GetProfile(ctx context.Context, id string) (Profile, error)

	// GetProfileBySource returns the latest profile for a source.
	GetProfileBySource(ctx context.Context, source string) (Profile, bool, error)

	// ListProfiles returns up to limit profiles, newest first.
	ListProfiles(ctx context.Context, limit int) ([]Profile, error)
}

// NewProfileID returns a fresh ULID for a profile.
func NewProfileID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
