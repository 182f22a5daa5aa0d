package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NLight-n/ClarityMDT-sub000/dto"
	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/usecases"
)

func handleGetConsensusReport(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewConsensusReportUseCase()
		report, err := usecase.GetConsensusReport(ctx, caseId)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"consensus_report": dto.AdaptConsensusReportDto(report)})
	}
}

func handlePostConsensusReport(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		var data dto.CreateConsensusReportBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewConsensusReportUseCase()
		report, err := usecase.CreateConsensusReport(ctx, models.CreateConsensusReportAttributes{
			CaseId:         caseId,
			FinalDiagnosis: data.FinalDiagnosis,
			MdtConsensus:   data.MdtConsensus,
			MeetingDate:    data.MeetingDate,
			Remarks:        data.Remarks.Ptr(),
		})
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"consensus_report": dto.AdaptConsensusReportDto(report)})
	}
}

func handlePatchConsensusReport(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		caseId, ok := caseIdFromUri(c)
		if !ok {
			return
		}

		var data dto.UpdateConsensusReportBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewConsensusReportUseCase()
		report, err := usecase.UpdateConsensusReport(ctx, models.UpdateConsensusReportAttributes{
			CaseId:         caseId,
			FinalDiagnosis: data.FinalDiagnosis,
			MdtConsensus:   data.MdtConsensus,
			MeetingDate:    data.MeetingDate,
			Remarks:        data.Remarks.Ptr(),
		})
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"consensus_report": dto.AdaptConsensusReportDto(report)})
	}
}
