// internal/pkg/session/types.go
package session

import "context"

// CachedIdentity is the locally cached projection of the token's claims,
// plus any profile fields merged in after registration or a profile update.
// It is only ever written alongside the bearer token it was derived from.
type CachedIdentity struct {
	Email            string `json:"email"`
	Role             string `json:"role"`
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	HighestEducation string `json:"highestEducation,omitempty"`
}

// RegisterResult reports the outcome of the two-phase registration flow.
// IdentityCreated means the account exists and a token was issued;
// ProfileEnriched means the follow-up student-record call also succeeded.
// Registration counts as successful whenever IdentityCreated is true.
type RegisterResult struct {
	IdentityCreated bool
	ProfileEnriched bool
	Token           string
	User            *CachedIdentity
}

type sidCtxKey struct{}

// WithSID returns a context carrying the browser session ID. The session
// middleware sets it once per request.
func WithSID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sidCtxKey{}, sid)
}

// SIDFromContext returns the session ID carried by ctx, or "".
func SIDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(sidCtxKey{}).(string)
	return sid
}
