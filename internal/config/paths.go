package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves the directory layout the tools write into. All relative
// configuration paths are anchored at a single base directory so the tools
// behave the same regardless of where they are invoked from.
type Paths struct {
	BaseDir    string
	DataDir    string
	ReportsDir string
	LogsDir    string
}

// NewPaths resolves cfg's directories against baseDir. An empty baseDir
// means the current working directory.
func NewPaths(baseDir string, cfg PathsConfig) (*Paths, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		baseDir = wd
	}
	return &Paths{
		BaseDir:    baseDir,
		DataDir:    resolve(baseDir, cfg.DataDir),
		ReportsDir: resolve(baseDir, cfg.ReportsDir),
		LogsDir:    resolve(baseDir, cfg.LogsDir),
	}, nil
}

// resolve joins dir onto base unless dir is already absolute.
func resolve(base, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

// EnsureDirectories creates every managed directory that does not exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetReportPath returns the full path of a file in the reports directory.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the full path of a file in the logs directory.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
