package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification(t *testing.T) {
	t.Run("accepts the three known labels", func(t *testing.T) {
		for _, label := range []string{"data_query", "explanation", "general"} {
			got, err := ParseClassification(label)
			require.NoError(t, err)
			assert.Equal(t, QueryClassification(label), got)
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		got, err := ParseClassification("  Data_Query\n")
		require.NoError(t, err)
		assert.Equal(t, ClassificationDataQuery, got)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, raw := range []string{"", "sql", "data query", "general greeting", "data_query."} {
			_, err := ParseClassification(raw)
			require.Error(t, err, "raw=%q", raw)
			assert.True(t, errors.Is(err, ErrUnknownClassification))
			assert.Equal(t, ErrCodeClassification, ErrorCode(err))
		}
	})
}
