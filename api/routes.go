package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NLight-n/ClarityMDT-sub000/usecases"
)

func addRoutes(r *gin.Engine, auth Authentication, tokenHandler TokenHandler, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/token", tokenHandler.GenerateToken)

	router := r.Use(auth.Middleware)

	router.GET("/credentials", handleGetCredentials())

	router.GET("/cases", handleListCases(uc))
	router.POST("/cases", handlePostCase(uc))
	router.GET("/cases/:case_id", handleGetCase(uc))
	router.PATCH("/cases/:case_id", handlePatchCase(uc))
	router.POST("/cases/:case_id/submit", handleSubmitCase(uc))
	router.POST("/cases/:case_id/resubmit", handleResubmitCase(uc))
	router.POST("/cases/:case_id/archive", handleArchiveCase(uc))
	router.GET("/cases/:case_id/events", handleListCaseEvents(uc))

	router.POST("/cases/:case_id/meeting", handleAssignMeeting(uc))
	router.PATCH("/cases/:case_id/meeting", handleReassignMeeting(uc))
	router.DELETE("/cases/:case_id/meeting", handleUnassignMeeting(uc))

	router.GET("/cases/:case_id/consensus-report", handleGetConsensusReport(uc))
	router.POST("/cases/:case_id/consensus-report", handlePostConsensusReport(uc))
	router.PATCH("/cases/:case_id/consensus-report", handlePatchConsensusReport(uc))

	router.GET("/meetings", handleListCandidateMeetings(uc))
	router.GET("/meetings/:meeting_id", handleGetMeeting(uc))
}
