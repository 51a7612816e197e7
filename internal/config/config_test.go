package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
world:
  seed: 12345
development:
  enabled: true
  seed: 999
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, int64(12345), cfg.World.Seed)
	assert.True(t, cfg.Development.Enabled)
	assert.Equal(t, int64(999), cfg.Development.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/world.yml")
	assert.Error(t, err, "отсутствующий файл должен возвращать ошибку")
}

func TestLoadEmptyPath(t *testing.T) {
	t.Setenv("WORLD_CONFIG", "")

	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Nil(t, cfg, "без конфига возвращаются дефолты")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "world: [not a map")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveSeedPriority(t *testing.T) {
	t.Setenv("WORLD_SEED", "")

	// Основной сид имеет высший приоритет
	cfg := &Config{
		World:       WorldConfig{Seed: 100},
		Development: DevConfig{Enabled: true, Seed: 200},
	}
	assert.Equal(t, int64(100), ResolveSeed(cfg))

	// Без основного сида работает сид разработки
	cfg.World.Seed = 0
	assert.Equal(t, int64(200), ResolveSeed(cfg))

	// Выключенный режим разработки игнорируется
	cfg.Development.Enabled = false
	seed := ResolveSeed(cfg)
	assert.NotEqual(t, int64(200), seed)
}

func TestResolveSeedFromEnv(t *testing.T) {
	t.Setenv("WORLD_SEED", "424242")

	assert.Equal(t, int64(424242), ResolveSeed(nil))
}

func TestResolveSeedFallback(t *testing.T) {
	t.Setenv("WORLD_SEED", "")

	seed := ResolveSeed(nil)
	assert.Greater(t, seed, int64(0), "запасной сид из времени должен быть положительным")
}
