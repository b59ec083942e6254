package bmeta

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	assert.Equal(t, logrus.Fields{
		"build_version": "v1.2.0",
		"build_date":    defaultBuildMeta,
		"build_commit":  "abc123",
	}, Fields("v1.2.0", "", "abc123"))
}

func TestPrint(t *testing.T) {
	l, hook := test.NewNullLogger()

	Print(l, "", "", "")

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, defaultBuildMeta, entry.Data["build_version"])
}
