package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/usecases"
)

type TokenHandler struct {
	uc     usecases.Usecases
	apiKey string
}

func NewTokenHandler(uc usecases.Usecases, apiKey string) TokenHandler {
	return TokenHandler{uc: uc, apiKey: apiKey}
}

type tokenRequestBody struct {
	UserId string `json:"user_id" binding:"required,uuid"`
}

// GenerateToken exchanges the service API key for a short-lived access
// token carrying the target user's credentials.
func (handler TokenHandler) GenerateToken(c *gin.Context) {
	ctx := c.Request.Context()

	key := c.GetHeader("X-API-Key")
	if handler.apiKey == "" ||
		subtle.ConstantTimeCompare([]byte(key), []byte(handler.apiKey)) != 1 {
		presentError(c, errors.Wrap(models.UnAuthorizedError, "invalid api key"))
		return
	}

	var body tokenRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	userId, err := uuid.Parse(body.UserId)
	if presentError(c, err) {
		return
	}

	usecase := handler.uc.NewTokenUsecase()
	token, expirationTime, err := usecase.GenerateToken(ctx, userId)
	if presentError(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   expirationTime,
	})
}
