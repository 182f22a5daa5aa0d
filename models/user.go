package models

import "github.com/google/uuid"

type UserId = uuid.UUID

type User struct {
	UserId       UserId
	Email        string
	FirstName    string
	LastName     string
	Role         Role
	DepartmentId *uuid.UUID
}

func (u User) HasDepartment() bool {
	return u.DepartmentId != nil
}
