package main

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/readlater/internal/app"
	"github.com/fsdevblog/readlater/internal/bmeta"
	"github.com/fsdevblog/readlater/internal/config"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0 ...".
var (
	buildVersion string //nolint:gochecknoglobals
	buildDate    string //nolint:gochecknoglobals
	buildCommit  string //nolint:gochecknoglobals
)

func main() {
	appConf, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	bmeta.Print(appConf.Logger, buildVersion, buildDate, buildCommit)

	a := app.Must(app.New(*appConf))

	a.Logger.WithFields(logrus.Fields{
		"storage":        appConf.DBType,
		"db_path":        appConf.DBPath,
		"health_address": appConf.HealthAddress,
	}).Info("Starting bot")
	if runErr := a.Run(); runErr != nil && !errors.Is(runErr, context.Canceled) {
		a.Logger.WithError(runErr).Fatal("bot stopped with error")
	}
}
