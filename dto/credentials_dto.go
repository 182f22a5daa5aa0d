package dto

import (
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
)

type Credentials struct {
	UserId       uuid.UUID  `json:"user_id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         string     `json:"role"`
	DepartmentId *uuid.UUID `json:"department_id,omitempty"`
}

func AdaptCredentialDto(creds models.Credentials) Credentials {
	return Credentials{
		UserId:       creds.ActorIdentity.UserId,
		Email:        creds.ActorIdentity.Email,
		FirstName:    creds.ActorIdentity.FirstName,
		LastName:     creds.ActorIdentity.LastName,
		Role:         creds.Role.String(),
		DepartmentId: creds.DepartmentId,
	}
}

func AdaptCredential(dto Credentials) models.Credentials {
	return models.Credentials{
		ActorIdentity: models.Identity{
			UserId:    dto.UserId,
			Email:     dto.Email,
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
		},
		Role:         models.RoleFromString(dto.Role),
		DepartmentId: dto.DepartmentId,
	}
}
