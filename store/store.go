package store

import (
	"context"
	"errors"
)

// ErrUnavailable is an exported constant or variable used by the session client.
var ErrUnavailable = errors.New("credential store unavailable")

const (
	// KeyAccessToken is an exported constant or variable used by the session client.
	KeyAccessToken = "accessToken"
	// KeyRefreshToken is an exported constant or variable used by the session client.
	KeyRefreshToken = "refreshToken"
	// KeyUser is an exported constant or variable used by the session client.
	KeyUser = "user"
	// KeyLastPage is an exported constant or variable used by the session client.
	KeyLastPage = "lastPage"
)

// Keys describes the keys operation and its observable behavior.
//
// Keys returns the four session keys in a fixed order. Clear implementations
// must remove exactly this set in one step.
func Keys() []string {
	return []string{KeyAccessToken, KeyRefreshToken, KeyUser, KeyLastPage}
}

// Store defines a public type used by Planner session APIs.
//
// Store implementations hold string-valued entries for the four session keys.
// Get reports absence separately from failure so consumers can fail closed on
// either. Clear removes all four keys together; partial clearing is not a
// valid state.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
