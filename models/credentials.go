package models

import "github.com/google/uuid"

type IntoCredentials interface {
	IntoCredentials() Credentials
}

type Identity struct {
	UserId    UserId
	Email     string
	FirstName string
	LastName  string
}

// Credentials is the actor of every engine operation: who is calling,
// with which role, scoped to which department. It is threaded
// explicitly through every usecase, never read from ambient state.
type Credentials struct {
	ActorIdentity Identity
	Role          Role
	DepartmentId  *uuid.UUID
}

func (u User) IntoCredentials() Credentials {
	return Credentials{
		ActorIdentity: Identity{
			UserId:    u.UserId,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		},
		Role:         u.Role,
		DepartmentId: u.DepartmentId,
	}
}
