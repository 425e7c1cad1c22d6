package planner

import "errors"

var (
	// ErrClientNotReady is an exported constant or variable used by the session client.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrLoginFailed is an exported constant or variable used by the session client.
	ErrLoginFailed = errors.New("login failed")
	// ErrLoginRateLimited is an exported constant or variable used by the session client.
	ErrLoginRateLimited = errors.New("login rate limited")
	// ErrBackendUnavailable is an exported constant or variable used by the session client.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrPathNotProtected is an exported constant or variable used by the session client.
	ErrPathNotProtected = errors.New("path is not protected")
	// ErrNotAuthenticated is an exported constant or variable used by the session client.
	ErrNotAuthenticated = errors.New("not authenticated")
)
