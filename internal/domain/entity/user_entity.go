package entity

import "time"

// Role is the account role an authenticated user carries.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleAgent Role = "AGENT"
	RoleBuyer Role = "BUYER"
)

// ParseRole maps a raw string to a known role, defaulting to BUYER.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleAgent, RoleBuyer:
		return Role(s)
	}
	return RoleBuyer
}

// User is an account. Passwords are stored as bcrypt hashes.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AgentProfile is the reduced view of a User embedded in property payloads.
// Role is only populated on the single-property detail view.
type AgentProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"role,omitempty"`
}
