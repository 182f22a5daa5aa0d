package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/NLight-n/ClarityMDT-sub000/api"
	"github.com/NLight-n/ClarityMDT-sub000/infra"
	"github.com/NLight-n/ClarityMDT-sub000/repositories"
	"github.com/NLight-n/ClarityMDT-sub000/usecases"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "mdt-engine",
		AppUrl:              utils.GetEnv("APP_URL", ""),
		Port:                utils.GetRequiredEnv[string]("PORT"),
		AuthApiKey:          utils.GetEnv("AUTH_API_KEY", ""),
		TokenLifetimeMinute: utils.GetEnv("TOKEN_LIFETIME_MINUTE", 60),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:         utils.GetEnv("PG_DATABASE", "mdt"),
		Hostname:         utils.GetEnv("PG_HOSTNAME", ""),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		User:             utils.GetEnv("PG_USER", ""),
		SslMode:          utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	serverConfig := struct {
		jwtSigningKey string
		loggingFormat string
		sentryDsn     string
	}{
		jwtSigningKey: utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY", ""),
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)
	jwtSigningKey := infra.ParseOrGenerateSigningKey(logger, serverConfig.jwtSigningKey)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(pgConfig.GetConnectionString())
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	// insert-only client: the server enqueues jobs, the worker runs them
	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{})
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	jwtRepository := repositories.NewJwtRepository(jwtSigningKey)
	uc := usecases.NewUsecases(usecases.Repositories{
		ExecutorGetter:      repositories.NewExecutorGetter(pool),
		MdtDbRepository:     repositories.MdtDbRepository{},
		TaskQueueRepository: repositories.NewTaskQueueRepository(riverClient),
		JwtRepository:       jwtRepository,
	},
		usecases.WithTokenLifetime(time.Duration(apiConfig.TokenLifetimeMinute)*time.Minute),
	)

	auth := api.NewAuthentication(jwtRepository)
	tokenHandler := api.NewTokenHandler(uc, apiConfig.AuthApiKey)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc, auth, tokenHandler)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx,
			errors.Wrap(err, "Error while shutting down the server"))
		return err
	}

	return nil
}
