package model

import "time"

// Role is the closed set of platform roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// User is an account row owned by the hosted identity provider.
type User struct {
	ID        string
	Email     string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
}
