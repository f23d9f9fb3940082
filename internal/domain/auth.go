package domain

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// AuthContext identifies the viewer of a session.
type AuthContext struct {
	Token    string
	UserID   string
	UserName string
	Role     Role
}

func (a AuthContext) Validate() error {
	if a.Token == "" || a.UserID == "" || !a.Role.Valid() {
		return ErrNotAuthenticated
	}
	return nil
}

func (a AuthContext) DisplayName() string {
	if a.UserName != "" {
		return a.UserName
	}
	return a.UserID
}
