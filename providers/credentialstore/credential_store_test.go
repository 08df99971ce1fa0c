package credentialstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCredentialStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credential.json")
	store := NewFileCredentialStore(path)

	t.Run("empty before first login", func(t *testing.T) {
		assert.Equal(t, "", store.Get())
	})

	t.Run("set then get round trip", func(t *testing.T) {
		require.NoError(t, store.Set("aaa.bbb.ccc"))
		assert.Equal(t, "aaa.bbb.ccc", store.Get())
	})

	t.Run("clear removes the key", func(t *testing.T) {
		require.NoError(t, store.Clear())
		assert.Equal(t, "", store.Get())
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		assert.NoError(t, store.Clear())
	})

	t.Run("corrupt file reads as logged out", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
		assert.Equal(t, "", store.Get())
	})
}
