package container

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/dataset"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/progress"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/results"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/session"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/storage"
)

type Container struct {
	Settings          *config.Settings
	ProgressContainer *progress.ProgressContainer
	ResultsContainer  *results.ResultsContainer
	SessionContainer  *session.SessionContainer
	Scheduler         *cron.Cron

	closeStore func(context.Context) error
}

func New() *Container {
	config.Init()
	settings := config.Load()
	ctx := context.Background()

	if err := config.Connect(ctx, settings.DBDriver, settings.DSN); err != nil {
		config.Logger.WithError(err).Fatal("Falha ao conectar ao banco de dados")
	}

	store, closeStore, err := storage.Open(ctx, storage.Options{
		Driver:        settings.StorageDriver,
		DB:            config.DB,
		RedisAddr:     settings.RedisAddr,
		RedisPassword: settings.RedisPassword,
		MongoURI:      settings.MongoURI,
		MongoDatabase: settings.MongoDatabase,
	})
	if err != nil {
		config.Logger.WithError(err).Fatal("Falha ao inicializar armazenamento")
	}

	resultsContainer, err := results.NewResultsContainer(config.DB, settings.ResultsTTL)
	if err != nil {
		config.Logger.WithError(err).Fatal("Falha ao migrar tabela de resultados")
	}

	progressContainer := progress.NewProgressContainer(store)
	sessionContainer := session.NewSessionContainer(
		newSource(settings),
		progressContainer.Service,
		resultsContainer.Service,
	)

	scheduler := cron.New()
	if _, err := results.ScheduleJanitor(scheduler, settings.JanitorSchedule, resultsContainer.Service); err != nil {
		config.Logger.WithError(err).Fatal("Agendamento inválido para limpeza de resultados")
	}
	if _, err := session.ScheduleEviction(scheduler, settings.JanitorSchedule, sessionContainer.Service, settings.SessionIdleTTL); err != nil {
		config.Logger.WithError(err).Fatal("Agendamento inválido para limpeza de sessões")
	}
	scheduler.Start()

	config.Logger.WithField("storage", settings.StorageDriver).Info("Container inicializado")

	return &Container{
		Settings:          settings,
		ProgressContainer: progressContainer,
		ResultsContainer:  resultsContainer,
		SessionContainer:  sessionContainer,
		Scheduler:         scheduler,
		closeStore:        closeStore,
	}
}

func newSource(settings *config.Settings) dataset.Source {
	if settings.DataBaseURL != "" {
		config.Logger.WithField("url", settings.DataBaseURL).Info("Carregando perguntas via HTTP")
		return dataset.NewHTTPSource(settings.DataBaseURL, settings.DataTimeout)
	}
	config.Logger.WithField("dir", settings.DataDir).Info("Carregando perguntas do disco")
	return dataset.NewFileSource(settings.DataDir)
}

// Close stops the scheduler, ends live sessions and releases the stores.
func (c *Container) Close(ctx context.Context) error {
	select {
	case <-c.Scheduler.Stop().Done():
	case <-ctx.Done():
	}

	c.SessionContainer.Service.Shutdown()

	var errs []error
	if err := c.closeStore(ctx); err != nil {
		errs = append(errs, err)
	}
	if sqlDB, err := config.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
