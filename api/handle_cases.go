package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/dto"
	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/usecases"
)

type CaseInput struct {
	Id string `uri:"case_id" binding:"required,uuid"`
}

func caseIdFromUri(c *gin.Context) (uuid.UUID, bool) {
	var caseInput CaseInput
	if err := c.ShouldBindUri(&caseInput); err != nil {
		c.Status(http.StatusBadRequest)
		return uuid.Nil, false
	}
	return uuid.MustParse(caseInput.Id), true
}

func handleListCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var filters dto.CaseFilters
		if err := c.ShouldBind(&filters); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		statuses, err := models.ValidateCaseStatuses(filters.Statuses)
		if presentError(c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		cases, err := usecase.ListCases(ctx, models.CaseFilters{
			Statuses:     statuses,
			DepartmentId: filters.DepartmentId,
			StartDate:    filters.StartDate,
			EndDate:      filters.EndDate,
		})
		if presentError(c, err) {
			return
		}

		caseDtos := make([]dto.Case, len(cases))
		for i, caseModel := range cases {
			caseDtos[i] = dto.AdaptCaseDto(caseModel)
		}
		c.JSON(http.StatusOK, gin.H{"cases": caseDtos})
	}
}

func handleGetCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		caseModel, err := usecase.GetCase(ctx, caseId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(caseModel)})
	}
}

func handlePostCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateCaseBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		caseModel, err := usecase.CreateCase(ctx, models.CreateCaseAttributes{
			Name:                   data.Name,
			PatientReference:       data.PatientReference,
			PresentingDepartmentId: data.PresentingDepartmentId,
		})
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"case": dto.AdaptCaseDto(caseModel)})
	}
}

func handlePatchCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		var data dto.UpdateCaseBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		caseModel, err := usecase.UpdateCase(ctx, models.UpdateCaseAttributes{
			Id:               caseId,
			Name:             data.Name,
			PatientReference: data.PatientReference,
		})
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(caseModel)})
	}
}

func handleSubmitCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		var data dto.SubmitCaseBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		caseModel, err := usecase.SubmitCase(ctx, caseId, data.MeetingId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(caseModel)})
	}
}

func handleResubmitCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		// the body is optional: resubmitting without one keeps the meeting
		var data dto.ResubmitCaseBody
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&data); err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		caseModel, err := usecase.ResubmitCase(ctx, caseId, data.MeetingId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(caseModel)})
	}
}

func handleArchiveCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		caseModel, err := usecase.ArchiveCase(ctx, caseId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(caseModel)})
	}
}

func handleListCaseEvents(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCaseUseCase()
		events, err := usecase.ListCaseEvents(ctx, caseId)
		if presentError(c, err) {
			return
		}

		eventDtos := make([]dto.CaseEvent, len(events))
		for i, event := range events {
			eventDtos[i] = dto.AdaptCaseEventDto(event)
		}
		c.JSON(http.StatusOK, gin.H{"events": eventDtos})
	}
}
