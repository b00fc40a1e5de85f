package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only role the backend recognises. An absent role means a regular customer.
const RoleAdmin = "admin"

// User represents a customer or staff member, identified externally by email.
type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
