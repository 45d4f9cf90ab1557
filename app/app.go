// Package app loads the application configuration.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const (
	cfgName     = "application"
	testCfgName = "application_test"

	defaultPort = 8080
)

var (
	cfg  *viper.Viper
	once sync.Once
)

// Config loads the application configuration.
//
// Rules:
//  1. If the current process is running `go test`, it tries application_test.yml.
//  2. Otherwise it tries application.yml.
//  3. It searches the project root (nearest parent with go.mod), its ./config
//     subdirectory, the working directory and its ./config subdirectory.
func Config() mo.Result[*viper.Viper] {
	once.Do(func() {
		cfg = loadViper()
	})
	return lo.If(cfg == nil, mo.Err[*viper.Viper](fmt.Errorf("can not find %s.yml", cfgName))).Else(mo.Ok(cfg))
}

// ServerPort returns the configured HTTP port, defaulting to 8080.
func ServerPort() int {
	res := Config()
	if res.IsError() {
		return defaultPort
	}
	if port := res.MustGet().GetInt("server.port"); port > 0 {
		return port
	}
	return defaultPort
}

// CORSOrigins returns the allowed CORS origins. An empty list means
// wide-open ("*").
func CORSOrigins() []string {
	res := Config()
	if res.IsError() {
		return nil
	}
	return res.MustGet().GetStringSlice("server.cors.origins")
}

func loadViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	addDefaultConfigPaths(v)

	name := cfgName
	if isTestProcess() {
		name = testCfgName
	}
	v.SetConfigName(name)
	if err := v.ReadInConfig(); err != nil {
		return nil
	}
	return v
}

// addDefaultConfigPaths registers the config search paths.
//
// Viper resolves relative paths against the current working directory, which
// varies between IDE runs, `go test` in package folders and production
// launches. Anchoring on the module root first keeps dev-time discovery
// stable; the CWD fallback keeps deployments flexible.
func addDefaultConfigPaths(v *viper.Viper) {
	cwd, err := os.Getwd()
	if err != nil {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		return
	}
	if root, ok := findProjectRoot(cwd); ok {
		v.AddConfigPath(root)
		v.AddConfigPath(filepath.Join(root, "config"))
	}
	v.AddConfigPath(cwd)
	v.AddConfigPath(filepath.Join(cwd, "config"))
}

// findProjectRoot walks upward from start until it finds a directory
// containing a go.mod. The existence check alone is enough; the file is
// never parsed.
func findProjectRoot(start string) (string, bool) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// isTestProcess detects whether we are running under `go test`. Test
// binaries receive -test.* flags, which is the most reliable signal.
func isTestProcess() bool {
	for _, a := range os.Args {
		if strings.HasPrefix(a, "-test.") {
			return true
		}
	}
	return strings.HasSuffix(os.Args[0], ".test")
}
