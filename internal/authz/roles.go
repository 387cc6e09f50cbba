package authz

const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
	RoleAdmin     = "admin"
)

func IsKnown(roleKey string) bool {
	switch roleKey {
	case RolePassenger, RoleDriver, RoleAdmin:
		return true
	}
	return false
}
