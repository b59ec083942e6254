// Package bmeta описывает метаданные сборки, которые передаются через -ldflags.
package bmeta

import "github.com/sirupsen/logrus"

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Fields возвращает версию, дату и коммит сборки в виде полей для логгера.
// Незаданные значения заменяются на N/A.
func Fields(version, date, commit string) logrus.Fields {
	return logrus.Fields{
		"build_version": orDefault(version),
		"build_date":    orDefault(date),
		"build_commit":  orDefault(commit),
	}
}

// Print пишет метаданные сборки в лог одной записью.
func Print(l logrus.FieldLogger, version, date, commit string) {
	l.WithFields(Fields(version, date, commit)).Info("Build info")
}

func orDefault(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
