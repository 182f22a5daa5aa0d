package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

type tokenValidator interface {
	ValidateToken(token string) (models.Credentials, error)
}

type Authentication struct {
	validator tokenValidator
}

func NewAuthentication(validator tokenValidator) Authentication {
	return Authentication{validator: validator}
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "missing Authorization header")
	}

	authHeader := strings.Split(authorization, "Bearer ")
	if len(authHeader) != 2 {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed Authorization header")
	}
	return authHeader[1], nil
}

// Middleware resolves the caller's credentials from the bearer token and
// stores them in the request context, together with a logger enriched
// with the caller's identity.
func (auth Authentication) Middleware(c *gin.Context) {
	token, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if presentError(c, err) {
		c.Abort()
		return
	}

	creds, err := auth.validator.ValidateToken(token)
	if err != nil {
		if !errors.Is(err, models.UnAuthorizedError) {
			err = errors.Join(models.UnAuthorizedError, err)
		}
		presentError(c, err)
		c.Abort()
		return
	}

	newContext := context.WithValue(c.Request.Context(), utils.ContextKeyCredentials, creds)

	logger := utils.LoggerFromContext(newContext).With(
		"user_id", creds.ActorIdentity.UserId,
		"role", creds.Role.String(),
	)
	newContext = context.WithValue(newContext, utils.ContextKeyLogger, logger)

	c.Request = c.Request.WithContext(newContext)
	c.Next()
}
