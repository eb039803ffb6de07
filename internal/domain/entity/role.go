package entity

// Role is the kind of account a user registered as.
type Role string

const (
	RoleRegular  Role = "regular"
	RoleDesigner Role = "designer"
)

func (r Role) String() string {
	return string(r)
}

// RoleFromRequest maps a registration request onto a stored role: only an explicit
// "designer" grants the designer role.
func RoleFromRequest(requested string) Role {
	if Role(requested) == RoleDesigner {
		return RoleDesigner
	}

	return RoleRegular
}
