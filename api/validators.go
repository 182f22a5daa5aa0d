package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/NLight-n/ClarityMDT-sub000/models"
)

// registerValidators adds the domain specific binding validators used by
// the request dtos.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("case_status", func(fl validator.FieldLevel) bool {
		return models.CaseStatusFrom(fl.Field().String()) != models.CaseUnknownStatus
	})
	_ = v.RegisterValidation("meeting_status", func(fl validator.FieldLevel) bool {
		return models.MeetingStatusFrom(fl.Field().String()) != models.MeetingUnknownStatus
	})
}
