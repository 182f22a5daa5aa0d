package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NLight-n/ClarityMDT-sub000/usecases"
)

func NewServer(
	router *gin.Engine,
	conf Configuration,
	uc usecases.Usecases,
	auth Authentication,
	tokenHandler TokenHandler,
) *http.Server {
	addRoutes(router, auth, tokenHandler, uc)

	return &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", conf.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      conf.DefaultTimeout + 5*time.Second,
	}
}
