// Package leaderboard supplies the publisher leaderboard shown next to results.
//
// Two mutually exclusive policies exist. Static boards are seeded once and
// never change. Dynamic boards are fetched from the backend after every
// successful analysis and replace the previous list wholesale.
package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/pressdetective/internal/domain/model"
)

// Policy names how a provider's contents evolve.
type Policy string

// Known policies.
const (
	PolicyStatic  Policy = "static"
	PolicyDynamic Policy = "dynamic"
)

// Sentinel kinds for leaderboard errors.
var (
	ErrFetch    = errors.New("leaderboard fetch failed")
	ErrBadSeed  = errors.New("invalid leaderboard seed")
	ErrNotFound = errors.New("leaderboard seed not found")
)

// Provider yields the current leaderboard.
type Provider interface {
	// Load returns the full list, in display order.
	Load(ctx context.Context) ([]model.LeaderboardEntry, error)
	// Policy reports whether Load is worth calling again after an analysis.
	Policy() Policy
}

func wrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
