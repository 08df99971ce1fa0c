package session

import (
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/FrumiousOwl/Teses-front-sub000/providers/credentialstore"
	"github.com/FrumiousOwl/Teses-front-sub000/providers/loggerprovider"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forgeToken builds a structurally valid but unsigned credential, which is all
// the decoder ever looks at.
func forgeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header, err := jsoniter.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := jsoniter.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func TestDecode(t *testing.T) {
	t.Run("valid token yields authenticated session", func(t *testing.T) {
		raw := forgeToken(t, map[string]interface{}{
			"role":        "InventoryManager",
			"unique_name": "m.reyes",
		})

		got := Decode(raw)
		assert.True(t, got.IsAuthenticated)
		assert.Equal(t, models.InventoryManagerRole, got.Role)
		assert.Equal(t, "m.reyes", got.DisplayName)
	})

	t.Run("falls back to name claim", func(t *testing.T) {
		raw := forgeToken(t, map[string]interface{}{
			"role": "User",
			"name": "Jun Cruz",
		})
		assert.Equal(t, "Jun Cruz", Decode(raw).DisplayName)
	})

	t.Run("array shaped role claim", func(t *testing.T) {
		raw := forgeToken(t, map[string]interface{}{
			"role":        []string{"SystemManager"},
			"unique_name": "admin",
		})
		assert.Equal(t, models.SystemManagerRole, Decode(raw).Role)
	})

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty credential", raw: ""},
		{name: "not a token at all", raw: "hello world"},
		{name: "two segments only", raw: "abc.def"},
		{name: "payload is not base64", raw: "abc.!!!!.def"},
		{name: "payload is not json", raw: "abc." + base64.RawURLEncoding.EncodeToString([]byte("nope")) + ".def"},
	}
	for _, tc := range tests {
		t.Run(tc.name+" is anonymous", func(t *testing.T) {
			got := Decode(tc.raw)
			assert.False(t, got.IsAuthenticated)
			assert.Equal(t, models.Role(""), got.Role)
		})
	}

	t.Run("missing role claim is anonymous", func(t *testing.T) {
		raw := forgeToken(t, map[string]interface{}{"unique_name": "ghost"})
		assert.False(t, Decode(raw).IsAuthenticated)
	})
}

func TestProviderLifecycle(t *testing.T) {
	store := credentialstore.NewFileCredentialStore(filepath.Join(t.TempDir(), "cred.json"))
	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()
	provider := NewProvider(store, logger)

	assert.False(t, provider.HasCredential())
	assert.False(t, provider.Current().IsAuthenticated)

	raw := forgeToken(t, map[string]interface{}{
		"role":        "RequestManager",
		"unique_name": "t.santos",
	})
	require.NoError(t, provider.Login(raw))
	assert.True(t, provider.HasCredential())
	assert.Equal(t, models.RequestManagerRole, provider.Current().Role)

	require.NoError(t, provider.Logout())
	assert.False(t, provider.HasCredential())
	assert.False(t, provider.Current().IsAuthenticated)
}

func TestLoginStoresGarbageVerbatim(t *testing.T) {
	// no client-side authentication in this build: the store takes whatever
	// the login form submitted, the decode step just reads it as anonymous
	store := credentialstore.NewFileCredentialStore(filepath.Join(t.TempDir(), "cred.json"))
	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()
	provider := NewProvider(store, logger)

	require.NoError(t, provider.Login("not-a-jwt"))
	assert.True(t, provider.HasCredential())
	assert.False(t, provider.Current().IsAuthenticated)
}
