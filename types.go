package planner

import (
	"context"
	"io"

	internalaudit "github.com/shahriyarnawaz/Planner/internal/audit"
)

// Profile is the nested profile object carried inside a stored user record.
// The role it carries is the fallback when the top-level role is absent.
type Profile struct {
	Role string `json:"role,omitempty"`
}

// UserRecord is the account record returned by the backend on login and
// persisted verbatim (as JSON) in the credential store. The client never
// trusts it for access control beyond role extraction.
type UserRecord struct {
	ID        string   `json:"id,omitempty"`
	Email     string   `json:"email,omitempty"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Role      string   `json:"role,omitempty"`
	Profile   *Profile `json:"profile,omitempty"`
}

// LoginPayload is returned by [AuthAPI.Login]: the token pair plus the
// user record the backend attached to the response.
type LoginPayload struct {
	AccessToken  string
	RefreshToken string
	User         UserRecord
}

// AuthAPI is the interface to the task-planning backend. The remote package
// provides the HTTP implementation; tests provide in-memory fakes.
type AuthAPI interface {
	Login(ctx context.Context, identifier, password string) (LoginPayload, error)
	Profile(ctx context.Context, accessToken string) (Profile, error)
}

// Navigator performs the actual view transition when the client decides a
// redirect. In a server shell this is an HTTP redirect; in tests a recorder.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a plain function to [Navigator].
type NavigatorFunc func(path string)

// Navigate describes the navigate operation and its observable behavior.
//
// Navigate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f NavigatorFunc) Navigate(path string) {
	f(path)
}

// SessionSnapshot is a point-in-time read of the four credential keys.
// Values reflect the store at read time; later reads may differ.
type SessionSnapshot struct {
	AccessToken  string
	RefreshToken string
	RawUser      string
	LastPage     string
}

// AuditEvent is a structured audit record emitted by the client.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the client's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
