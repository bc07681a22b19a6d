package authx

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// UserFromToken derives a User from the claims segment of a JWT-shaped access
// token WITHOUT verifying its signature. This is deliberate: the client holds
// no key and the claims inform optimistic display and UX-level gating only,
// never an authorization decision.
//
// Roles are read from the app_roles claim, falling back to roles; the subject
// from sub, falling back to unique_name, defaulting to "unknown".
func UserFromToken(token string) (*User, error) {
	claims := jwt.MapClaims{}
	if _, _, err :=
		jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "error parsing access token claims")
	}

	sub := stringClaim(claims, "sub")
	if sub == "" {
		sub = stringClaim(claims, "unique_name")
	}
	if sub == "" {
		sub = "unknown"
	}

	rawRoles, ok := stringSliceClaim(claims, "app_roles")
	if !ok {
		rawRoles, _ = stringSliceClaim(claims, "roles")
	}

	displayName := stringClaim(claims, "name")
	if displayName == "" {
		displayName = stringClaim(claims, "preferred_username")
	}

	return &User{
		Sub:         sub,
		Roles:       NormalizeRoles(rawRoles),
		DisplayName: displayName,
		Email:       stringClaim(claims, "email"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if value, ok := claims[name].(string); ok {
		return value
	}
	return ""
}

// stringSliceClaim extracts a claim expected to be an array of strings.
// Malformed elements are dropped rather than failing the whole extraction.
func stringSliceClaim(claims jwt.MapClaims, name string) ([]string, bool) {
	rawSlice, ok := claims[name].([]interface{})
	if !ok {
		return nil, false
	}
	values := []string{}
	for _, rawValue := range rawSlice {
		if value, ok := rawValue.(string); ok {
			values = append(values, value)
		}
	}
	return values, true
}
