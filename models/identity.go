package models

// Identity is the verified (user_id, role) pair the gateway attaches
// to every authenticated request. Services trust it as-is and never
// consult ambient session state.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

func (i Identity) CanOrganize() bool {
	return i.Role == RoleOrganizer || i.Role == RoleAdmin
}
