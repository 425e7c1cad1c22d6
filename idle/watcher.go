package idle

import (
	"errors"
	"sync"
	"time"

	"github.com/shahriyarnawaz/Planner/token"
)

// ErrAlreadyStarted is an exported constant or variable used by the session client.
var ErrAlreadyStarted = errors.New("idle watcher already started")

// ErrExpiredOnStart is returned by Start when the session was already expired
// at mount time; the logout action has been invoked before it returns.
var ErrExpiredOnStart = errors.New("session expired before idle watcher start")

const (
	// DefaultTimeout is an exported constant or variable used by the session client.
	DefaultTimeout = 15 * time.Minute
	// DefaultCheckInterval is an exported constant or variable used by the session client.
	DefaultCheckInterval = time.Minute
)

// Reason defines a public type used by Planner session APIs.
//
// Reason instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Reason uint8

const (
	// ReasonIdleTimeout is an exported constant or variable used by the session client.
	ReasonIdleTimeout Reason = iota
	// ReasonTokenExpired is an exported constant or variable used by the session client.
	ReasonTokenExpired
)

// String describes the string operation and its observable behavior.
//
// String does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r Reason) String() string {
	switch r {
	case ReasonIdleTimeout:
		return "idle_timeout"
	case ReasonTokenExpired:
		return "token_expired"
	default:
		return "unknown"
	}
}

// TokenFunc supplies the current access token, read fresh from the shared
// credential store. Implementations must fail closed: on any store error they
// report ok == false rather than returning one.
type TokenFunc func() (raw string, ok bool)

// LogoutFunc performs the forced logout: clearing the credential store and
// navigating to the login view. It is invoked at most once per watcher run.
type LogoutFunc func(reason Reason)

// Config defines a public type used by Planner session APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Timeout       time.Duration
	CheckInterval time.Duration
}

// Watcher defines a public type used by Planner session APIs.
//
// Watcher instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Watcher struct {
	cfg    Config
	token  TokenFunc
	logout LogoutFunc
	now    func() time.Time

	activity chan struct{}
	visible  chan struct{}
	stop     chan struct{}
	done     chan struct{}

	mu       sync.Mutex
	running  bool
	stopOnce sync.Once
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New(cfg Config, tokenFn TokenFunc, logoutFn LogoutFunc) (*Watcher, error) {
	if tokenFn == nil {
		return nil, errors.New("token supplier required")
	}
	if logoutFn == nil {
		return nil, errors.New("logout action required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = DefaultCheckInterval
	}

	return &Watcher{
		cfg:      cfg,
		token:    tokenFn,
		logout:   logoutFn,
		now:      time.Now,
		activity: make(chan struct{}, 1),
		visible:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start describes the start operation and its observable behavior.
//
// Start evaluates token expiry immediately: an already-expired session is
// logged out on the caller's goroutine and [ErrExpiredOnStart] is returned
// without starting the watcher. Otherwise the watch loop begins with a fresh
// idle timer.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrAlreadyStarted
	}

	if w.expired() {
		w.logout(ReasonTokenExpired)
		close(w.done)
		w.running = true
		return ErrExpiredOnStart
	}

	w.running = true
	go w.run()

	return nil
}

// Activity signals a user-activity event (pointer movement, pointer press,
// key press, scroll, touch start). Signals are coalesced: if one is already
// pending the new one is dropped, which is equivalent because the pending
// signal has not reset the timer yet. Activity never blocks.
func (w *Watcher) Activity() {
	select {
	case w.activity <- struct{}{}:
	default:
	}
}

// Visible signals the page becoming visible again. It triggers an expiry
// re-check but does not reset the idle timer; only activity does that.
// Visible never blocks.
func (w *Watcher) Visible() {
	select {
	case w.visible <- struct{}{}:
	default:
	}
}

// Stop tears the watcher down: the pending idle timer is cancelled and the
// watch loop has fully exited before Stop returns, so no logout can fire
// after it. Stop is idempotent and safe to call after a forced logout.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()

	if !running {
		return
	}

	w.stopOnce.Do(func() {
		close(w.stop)
	})
	<-w.done
}

func (w *Watcher) run() {
	defer close(w.done)

	timer := time.NewTimer(w.cfg.Timeout)
	defer timer.Stop()

	ticker := time.NewTicker(w.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return

		case <-timer.C:
			w.logout(ReasonIdleTimeout)
			return

		case <-w.activity:
			if w.expired() {
				w.logout(ReasonTokenExpired)
				return
			}
			// Single-timer invariant: cancel and drain before re-arming.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.cfg.Timeout)

		case <-w.visible:
			if w.expired() {
				w.logout(ReasonTokenExpired)
				return
			}

		case <-ticker.C:
			if w.expired() {
				w.logout(ReasonTokenExpired)
				return
			}
		}
	}
}

func (w *Watcher) expired() bool {
	raw, ok := w.token()
	if !ok || raw == "" {
		return true
	}
	return token.Expired(raw, w.now())
}
