package authx

import "golang.org/x/oauth2"

// User represents the authenticated MetricsSimple user as the client sees it.
// It is derived either from the API server's whoami endpoint or, failing
// that, from the unverified claims of the access token, and is suitable for
// display and UX-level role gating only. The server remains the authority on
// every actual authorization decision.
type User struct {
	// Sub is the subject identifier from the token or whoami response.
	Sub string `json:"sub"`
	// Roles contains only recognized roles. See NormalizeRoles.
	Roles []Role `json:"roles"`
	// DisplayName is optional and display-only.
	DisplayName string `json:"displayName,omitempty"`
	// Email is optional and display-only.
	Email string `json:"email,omitempty"`
}

// HasRole returns whether the User holds the given Role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the product of a successful login. It is never persisted as a
// unit; the token and the user are stored separately by the TokenStore.
type Session struct {
	// Token carries the bearer access token and its advisory expiry. The
	// expiry is metadata only; this client never enforces it.
	Token *oauth2.Token
	// User is the resolved user, when one could be resolved.
	User *User
}

// AccessToken returns the session's raw bearer token.
func (s Session) AccessToken() string {
	if s.Token == nil {
		return ""
	}
	return s.Token.AccessToken
}
