package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/readlater/internal/bot"
	"github.com/fsdevblog/readlater/internal/config"
	"github.com/fsdevblog/readlater/internal/controllers"
	"github.com/fsdevblog/readlater/internal/services"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	config     config.Config
	dbServices *services.Services
	api        *tgbotapi.BotAPI
	dispatcher *bot.Dispatcher
	Logger     *logrus.Logger
}

func New(conf config.Config) (*App, error) {
	return newApp(conf, tgbotapi.APIEndpoint)
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// newApp собирает приложение. endpoint - шаблон адреса Bot API (см. tgbotapi.APIEndpoint).
func newApp(conf config.Config, endpoint string) (*App, error) {
	logger := conf.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	dbServices, err := services.Factory(services.FactoryConfig{
		Type:       services.ServiceType(conf.DBType),
		SQLitePath: conf.DBPath,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	if logErr := tgbotapi.SetLogger(logger.WithField("module", "tgbotapi")); logErr != nil {
		return nil, fmt.Errorf("set bot logger: %w", logErr)
	}
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(conf.BotToken, endpoint)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	api.Debug = conf.Debug
	logger.WithField("username", api.Self.UserName).Info("Authorized on telegram")

	handlers := bot.NewHandlers(dbServices.LinkService, logger)
	return &App{
		config:     conf,
		dbServices: dbServices,
		api:        api,
		dispatcher: bot.NewDispatcher(api, handlers, conf.HandlerTimeout, logger),
		Logger:     logger,
	}, nil
}

// Run запускает бота и служебный http сервер и блокируется до SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 1)

	server := a.healthServer()
	if server != nil {
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = a.config.PollTimeout
	updates := a.api.GetUpdatesChan(u)

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.dispatcher.Run(ctx, updates)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case runErr = <-errChan:
		a.Logger.WithError(runErr).Error("health server error")
	}

	cancel()
	a.api.StopReceivingUpdates()
	// Дожидаемся текущего сообщения, чтобы не оборвать транзакцию на середине
	<-done

	if server != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("health server shutdown error")
		}
	}

	a.Logger.Info("Bot stopped")
	return runErr
}

// healthServer возвращает nil, если адрес служебного сервера не задан.
func (a *App) healthServer() *http.Server {
	if a.config.HealthAddress == "" {
		return nil
	}
	return &http.Server{
		Addr: a.config.HealthAddress,
		Handler: controllers.SetupRouter(controllers.RouterParams{
			PingService: a.dbServices.PingService,
			Links:       a.dbServices.LinkService,
			Logger:      a.Logger,
		}),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
