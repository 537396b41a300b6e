package llmconnect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileInputContent(t *testing.T) {
	t.Run("from path uses base name", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "requests.jsonl")
		require.NoError(t, os.WriteFile(path, []byte(`{"custom_id":"a"}`), 0o644))

		data, name, err := FileFromPath(path).Content()
		require.NoError(t, err)
		assert.Equal(t, "requests.jsonl", name)
		assert.Equal(t, `{"custom_id":"a"}`, string(data))
	})

	t.Run("from bytes", func(t *testing.T) {
		data, name, err := FileFromBytes([]byte("payload"), "custom.jsonl").Content()
		require.NoError(t, err)
		assert.Equal(t, "custom.jsonl", name)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("from reader defaults filename", func(t *testing.T) {
		data, name, err := FileFromReader(bytes.NewBufferString("streamed"), "").Content()
		require.NoError(t, err)
		assert.Equal(t, "file.jsonl", name)
		assert.Equal(t, "streamed", string(data))
	})

	t.Run("missing path fails", func(t *testing.T) {
		_, _, err := FileFromPath(filepath.Join(t.TempDir(), "nope.jsonl")).Content()
		assert.Error(t, err)
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, _, err := (&FileInput{}).Content()
		assert.Error(t, err)
	})
}
