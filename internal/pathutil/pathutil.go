// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "SLUMBER_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	boltFilePath   string
	sqliteFilePath string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		p := &Paths{
			configDir:      "slumber",
			configFileName: "config.yml",
			boltFileName:   "slumber.db",
			sqliteFileName: "slumber.sqlite",
			logFileName:    "slumber.log",
		}

		p.applyEnvironmentOverrides()

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func BoltFilePath() string {
	return Must().boltFilePath
}

func SQLiteFilePath() string {
	return Must().sqliteFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.boltFileName = fmt.Sprintf("slumber_%s.db", env)
		p.sqliteFileName = fmt.Sprintf("slumber_%s.sqlite", env)
		p.logFileName = fmt.Sprintf("slumber_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	p.boltFilePath = filepath.Join(dataDir, p.boltFileName)

	p.sqliteFilePath = filepath.Join(dataDir, p.sqliteFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
