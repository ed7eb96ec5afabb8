//go:build unit

package infra_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"tos-api/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("logs the wrapped error with its stack", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		cause := assert.AnError
		err := infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to query responses", cause)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, cause)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "Repository error: failed to query responses", entry["msg"])
		assert.Equal(t, "DB_FAILURE", entry["kind"])

		stack, ok := entry["stack"].([]any)
		require.True(t, ok, "stack should be logged as a list: %v", entry["stack"])
		assert.NotEmpty(t, stack)
		assert.LessOrEqual(t, len(stack), 8)
	})

	t.Run("without a cause only the kind is logged", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		err := infra.WrapRepoErr(logger, infra.KindDuplicateKey, "response key already exists", nil)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "DUPLICATE_KEY: response key already exists", err.Error())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.NotContains(t, entry, "stack")
	})
}
