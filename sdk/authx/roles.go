package authx

// Role represents a named set of permissions held by a User. MetricsSimple
// recognizes exactly two; role strings reported by the API server or found in
// token claims that match neither are discarded during normalization.
type Role string

const (
	// RoleAdmin grants full management of connectors, processes, and process
	// versions.
	RoleAdmin Role = "Metrics.Admin"
	// RoleReader grants read-only access.
	RoleReader Role = "Metrics.Reader"
)

// NormalizeRoles filters raw role strings down to recognized Roles,
// preserving order and silently dropping everything else.
func NormalizeRoles(rawRoles []string) []Role {
	roles := []Role{}
	for _, rawRole := range rawRoles {
		switch Role(rawRole) {
		case RoleAdmin, RoleReader:
			roles = append(roles, Role(rawRole))
		}
	}
	return roles
}
