package sql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fsdevblog/readlater/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConvertErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "translated duplicate", err: gorm.ErrDuplicatedKey, want: repositories.ErrDuplicateKey},
		{
			name: "raw unique violation",
			err:  errors.New("UNIQUE constraint failed: articles.url"),
			want: repositories.ErrDuplicateKey,
		},
		{name: "not found", err: fmt.Errorf("take: %w", gorm.ErrRecordNotFound), want: repositories.ErrNotFound},
		{name: "canceled", err: context.Canceled, want: repositories.ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertErrorType(tt.err)
			require.ErrorIs(t, got, tt.want)
			require.ErrorIs(t, got, tt.err)
			assert.Contains(t, got.Error(), "[link repository]")
		})
	}

	assert.NoError(t, ConvertErrorType(nil))
}
