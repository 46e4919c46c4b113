package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/container"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/router"
)

// @title Life in the UK Quiz API
// @version 1.0
// @description Practice, test and individual exam sessions for the Life in the UK test.
// @BasePath /
func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		SessionHandler:  c.SessionContainer.Handler,
		ProgressHandler: c.ProgressContainer.Handler,
		ResultsHandler:  c.ResultsContainer.Handler,
		AllowedOrigin:   c.Settings.AllowedOrigin,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	srv := &http.Server{
		Addr:              ":" + c.Settings.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		config.Logger.WithField("port", c.Settings.Port).Info("Servidor iniciado")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("Erro ao iniciar servidor")
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Erro ao encerrar servidor")
	}
	if err := c.Close(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Erro ao liberar recursos")
	}
}
