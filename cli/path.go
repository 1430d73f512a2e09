package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/rbleattler/RegExRules/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config.yaml"

var defaultDirMode os.FileMode = 0o700

// basePrefix returns the name used for the configuration and cache
// directories: the base name of the executable without extension.
//
// The dlv debugger's default output name "__debug_bin" is replaced with
// [pkg.Name], and leading dots are removed.
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))

		id = regexp.MustCompile(`^__debug_bin\d*$`).ReplaceAllString(id, pkg.Name)
		id = strings.TrimLeft(id, ".")

		if id == "" {
			id = pkg.Name
		}

		return id
	},
)

// userDir returns filepath.Join(base, basePrefix()) where base is the
// result of primary, falling back to fallback under the home directory and
// finally the working directory.
func userDir(primary func() (string, error), fallback string) string {
	dir, err := primary()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if wd, werr := os.Getwd(); werr == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, basePrefix())
}

var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// configPath joins elem to the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
