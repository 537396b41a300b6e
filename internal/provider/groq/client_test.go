package groq

import (
	"testing"

	ai "github.com/spetersoncode/llmconnect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("missing key fails with authentication error", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "")
		_, err := New(ai.Config{})
		var authErr *ai.AuthenticationError
		require.ErrorAs(t, err, &authErr)
		assert.Contains(t, err.Error(), "GROQ_API_KEY")
	})

	t.Run("reports groq provider", func(t *testing.T) {
		conn, err := New(ai.Config{APIKey: "gsk-test"})
		require.NoError(t, err)
		assert.Equal(t, ai.ProviderGroq, conn.Provider())
	})

	t.Run("all capabilities available", func(t *testing.T) {
		conn, err := New(ai.Config{APIKey: "gsk-test"})
		require.NoError(t, err)
		assert.NotNil(t, conn.Chat())
		assert.NotNil(t, conn.Batch())
		assert.NotNil(t, conn.File())
	})
}
