package config

import (
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type DBType string

const (
	DBTypeSQLite   DBType = "sqlite"
	DBTypeInMemory DBType = "inMemory"
)

const DefaultDBPath = "articles.db"

var ErrUnknownDBType = errors.New("unknown storage type")

type Config struct {
	// Токен доступа к Telegram Bot API. Обязателен.
	BotToken string `env:"BOT_TOKEN,required,notEmpty"`
	// Тип хранилища
	DBType DBType `env:"DB"`
	// Путь к файлу SQLite
	DBPath string `env:"DB_PATH"`
	// Адрес служебного http сервера (/ping, /stats). Пустой - сервер не запускается.
	HealthAddress string `env:"HEALTH_ADDRESS"`
	// Время на обработку одного сообщения
	HandlerTimeout time.Duration `env:"HANDLER_TIMEOUT" envDefault:"10s"`
	// Таймаут long polling в секундах
	PollTimeout int  `env:"POLL_TIMEOUT" envDefault:"60"`
	Debug       bool `env:"BOT_DEBUG"`

	Logger *logrus.Logger
}

// LoadConfig читает .env (если есть), переменные окружения и флаги командной строки args.
// Значения из окружения приоритетнее флагов.
func LoadConfig(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env file error")
	}

	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	if err := loadFlags(&flagsConfig, args); err != nil {
		return nil, err
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	switch conf.DBType {
	case DBTypeSQLite, DBTypeInMemory:
	default:
		return nil, errors.Wrapf(ErrUnknownDBType, "`%s`", conf.DBType)
	}

	conf.Logger = initLogger()
	return conf, nil
}

// loadFlags парсит флаги командной строки.
func loadFlags(flagsConfig *Config, args []string) error {
	fs := flag.NewFlagSet("readlater", flag.ContinueOnError)

	fs.StringVar((*string)(&flagsConfig.DBType), "s", string(DBTypeSQLite), "Тип хранилища (sqlite|inMemory)")
	fs.StringVar(&flagsConfig.DBPath, "d", DefaultDBPath, "Путь к файлу базы данных")
	fs.StringVar(&flagsConfig.HealthAddress, "a", "", "Адрес служебного http сервера")

	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags error")
	}
	return nil
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		BotToken:       envConfig.BotToken,
		DBType:         defaultIfBlank(envConfig.DBType, flagsConfig.DBType),
		DBPath:         defaultIfBlank(envConfig.DBPath, flagsConfig.DBPath),
		HealthAddress:  defaultIfBlank(envConfig.HealthAddress, flagsConfig.HealthAddress),
		HandlerTimeout: envConfig.HandlerTimeout,
		PollTimeout:    envConfig.PollTimeout,
		Debug:          envConfig.Debug,
	}
}

func defaultIfBlank[T ~string](value T, defaultValue T) T {
	if value == "" {
		return defaultValue
	}
	return value
}
