package dbmodels

import (
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

type DBUser struct {
	Id           uuid.UUID  `db:"id"`
	Email        string     `db:"email"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Role         string     `db:"role"`
	DepartmentId *uuid.UUID `db:"department_id"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		UserId:       db.Id,
		Email:        db.Email,
		FirstName:    db.FirstName,
		LastName:     db.LastName,
		Role:         models.RoleFromString(db.Role),
		DepartmentId: db.DepartmentId,
	}, nil
}
