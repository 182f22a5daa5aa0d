package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/dto"
	"github.com/NLight-n/ClarityMDT-sub000/usecases"
)

type MeetingInput struct {
	Id string `uri:"meeting_id" binding:"required,uuid"`
}

func handleListCandidateMeetings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewMeetingAssignmentUseCase()
		meetings, err := usecase.ListCandidateMeetings(ctx)
		if presentError(c, err) {
			return
		}

		meetingDtos := make([]dto.Meeting, len(meetings))
		for i, meeting := range meetings {
			meetingDtos[i] = dto.AdaptMeetingDto(meeting)
		}
		c.JSON(http.StatusOK, gin.H{"meetings": meetingDtos})
	}
}

func handleGetMeeting(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var meetingInput MeetingInput
		if err := c.ShouldBindUri(&meetingInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewMeetingAssignmentUseCase()
		meeting, err := usecase.GetMeeting(ctx, uuid.MustParse(meetingInput.Id))
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"meeting": dto.AdaptMeetingDto(meeting)})
	}
}

func handleAssignMeeting(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		var data dto.AssignMeetingBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewMeetingAssignmentUseCase()
		caseModel, err := usecase.AssignMeeting(ctx, caseId, data.MeetingId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(caseModel)})
	}
}

func handleReassignMeeting(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		var data dto.ReassignMeetingBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewMeetingAssignmentUseCase()
		caseModel, err := usecase.ReassignMeeting(ctx, caseId, data.MeetingId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(caseModel)})
	}
}

func handleUnassignMeeting(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewMeetingAssignmentUseCase()
		caseModel, err := usecase.UnassignMeeting(ctx, caseId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(caseModel)})
	}
}
