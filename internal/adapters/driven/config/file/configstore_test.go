package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfigStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_DefaultsToHomeDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := NewConfigStore("")
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".revu", "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set("llm.model", "gpt-4o-mini"))
	require.NoError(t, store.Set("review.max_chunks", int64(5)))
	require.NoError(t, store.Set("serve.enabled", true))

	assert.Equal(t, "gpt-4o-mini", store.GetString("llm.model"))
	assert.Equal(t, 5, store.GetInt("review.max_chunks"))
	assert.True(t, store.GetBool("serve.enabled"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("twilio.from_number", "+14155550100"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "+14155550100", reopened.GetString("twilio.from_number"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	config := `[llm]
provider = "openai"

[llm.openai]
model = "gpt-4o-mini"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(config), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "openai", store.GetString("llm.provider"))
	assert.Equal(t, "gpt-4o-mini", store.GetString("llm.openai.model"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set("content.sources", []string{"newsletter", "blog"}))
	assert.Equal(t, []string{"newsletter", "blog"}, store.GetStringSlice("content.sources"))

	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_EnvOverridesFile(t *testing.T) {
	store := newTestConfigStore(t)
	require.NoError(t, store.Set("openai.api_key", "from-file"))

	t.Setenv("REVU_OPENAI_API_KEY", "from-env")
	assert.Equal(t, "from-env", store.GetString("openai.api_key"))
}

func TestConfigStore_WrongTypeReturnsZero(t *testing.T) {
	store := newTestConfigStore(t)
	require.NoError(t, store.Set("key", "string value"))

	assert.Equal(t, 0, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
	assert.Nil(t, store.GetStringSlice("key"))
}
