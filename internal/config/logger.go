package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// initLogger инициализирует логгер. В продакшне (GIN_MODE=release) пишем json с уровнем Info,
// в остальных окружениях текст с уровнем Debug.
func initLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if os.Getenv("GIN_MODE") == "release" {
		logger.SetFormatter(new(logrus.JSONFormatter))
		logger.SetLevel(logrus.InfoLevel)
		return logger
	}

	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}
