package authx

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeToken assembles a JWT-shaped token with the given claims and a junk
// signature. UserFromToken never verifies signatures, so junk is fine.
func makeToken(t *testing.T, claims map[string]interface{}) string {
	headerBytes, err := json.Marshal(
		map[string]interface{}{"alg": "HS256", "typ": "JWT"},
	)
	require.NoError(t, err)
	claimsBytes, err := json.Marshal(claims)
	require.NoError(t, err)
	return fmt.Sprintf(
		"%s.%s.signature",
		base64.RawURLEncoding.EncodeToString(headerBytes),
		base64.RawURLEncoding.EncodeToString(claimsBytes),
	)
}

func TestUserFromToken(t *testing.T) {
	testCases := []struct {
		name         string
		claims       map[string]interface{}
		expectedUser User
	}{
		{
			name: "app_roles preferred over roles",
			claims: map[string]interface{}{
				"sub":       "alice",
				"app_roles": []interface{}{"Metrics.Admin"},
				"roles":     []interface{}{"Metrics.Reader"},
			},
			expectedUser: User{
				Sub:   "alice",
				Roles: []Role{RoleAdmin},
			},
		},
		{
			name: "roles claim used when app_roles absent",
			claims: map[string]interface{}{
				"sub":   "alice",
				"roles": []interface{}{"Metrics.Reader"},
			},
			expectedUser: User{
				Sub:   "alice",
				Roles: []Role{RoleReader},
			},
		},
		{
			name: "unrecognized roles dropped",
			claims: map[string]interface{}{
				"sub": "alice",
				"app_roles": []interface{}{
					"Metrics.Admin",
					"Directory.Admin",
					"Metrics.Reader",
				},
			},
			expectedUser: User{
				Sub:   "alice",
				Roles: []Role{RoleAdmin, RoleReader},
			},
		},
		{
			name: "malformed role elements dropped",
			claims: map[string]interface{}{
				"sub":       "alice",
				"app_roles": []interface{}{42, "Metrics.Reader"},
			},
			expectedUser: User{
				Sub:   "alice",
				Roles: []Role{RoleReader},
			},
		},
		{
			name: "unique_name fallback for subject",
			claims: map[string]interface{}{
				"unique_name": "alice@example.com",
			},
			expectedUser: User{
				Sub:   "alice@example.com",
				Roles: []Role{},
			},
		},
		{
			name:   "unknown subject when no subject claims",
			claims: map[string]interface{}{},
			expectedUser: User{
				Sub:   "unknown",
				Roles: []Role{},
			},
		},
		{
			name: "display name prefers name over preferred_username",
			claims: map[string]interface{}{
				"sub":                "alice",
				"name":               "Alice Adams",
				"preferred_username": "alice@example.com",
			},
			expectedUser: User{
				Sub:         "alice",
				Roles:       []Role{},
				DisplayName: "Alice Adams",
			},
		},
		{
			name: "preferred_username fallback for display name",
			claims: map[string]interface{}{
				"sub":                "alice",
				"preferred_username": "alice@example.com",
				"email":              "alice@example.com",
			},
			expectedUser: User{
				Sub:         "alice",
				Roles:       []Role{},
				DisplayName: "alice@example.com",
				Email:       "alice@example.com",
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			user, err := UserFromToken(makeToken(t, testCase.claims))
			require.NoError(t, err)
			require.Equal(t, testCase.expectedUser, *user)
		})
	}
}

func TestUserFromTokenMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		token string
	}{
		{
			name:  "not a jwt at all",
			token: "opensesame",
		},
		{
			name:  "claims segment is not base64",
			token: "eyJhbGciOiJIUzI1NiJ9.!!!.signature",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			user, err := UserFromToken(testCase.token)
			require.Error(t, err)
			require.Contains(t, err.Error(), "error parsing access token claims")
			require.Nil(t, user)
		})
	}
}

func TestNormalizeRoles(t *testing.T) {
	require.Equal(
		t,
		[]Role{RoleReader, RoleAdmin},
		NormalizeRoles(
			[]string{"Metrics.Reader", "Metrics.Writer", "Metrics.Admin"},
		),
	)
	require.Empty(t, NormalizeRoles(nil))
}

func TestUserHasRole(t *testing.T) {
	user := &User{
		Sub:   "alice",
		Roles: []Role{RoleReader},
	}
	require.True(t, user.HasRole(RoleReader))
	require.False(t, user.HasRole(RoleAdmin))
}
