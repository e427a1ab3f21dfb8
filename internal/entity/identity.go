package entity

// Identity is the caller identity derived from a verified bearer token.
// It is threaded explicitly into service calls; a nil *Identity means the
// request is anonymous.
type Identity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
