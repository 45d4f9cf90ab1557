package app

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_LoadsApplicationTestYml(t *testing.T) {
	// Reset singleton for this test.
	cfg = nil
	once = sync.Once{}

	res := Config()
	require.True(t, res.IsOk())
	v := res.MustGet()
	require.NotNil(t, v)

	// These values come from application_test.yml at the module root.
	require.Equal(t, 8080, v.GetInt("server.port"))
	require.Equal(t, "sqlite3", v.GetString("datasource.default.driver"))
}

func TestServerPort_Default(t *testing.T) {
	require.Equal(t, 8080, ServerPort())
}

func TestFindProjectRoot(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	root, ok := findProjectRoot(cwd)
	require.True(t, ok)
	require.FileExists(t, filepath.Join(root, "go.mod"))
}
