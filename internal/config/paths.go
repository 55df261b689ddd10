package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the application paths
// This is the single source of truth for ALL file paths in the application
type Paths struct {
	ExecutableDir  string
	DataDir        string
	MasterFilesDir string
	ReportsDir     string
	LogsDir        string

	// Well-known report files
	DecodedWorkbook string
	DetailCSV       string
	HeaderCSV       string
}

// GetPaths returns the application paths relative to the executable location
// All paths are ALWAYS relative to the executable directory, never the current working directory
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	return pathsFromBase(filepath.Dir(exe)), nil
}

// PathsFrom returns the application paths rooted at an arbitrary base
// directory. Tests use this to run against a temp directory.
func PathsFrom(baseDir string) *Paths {
	return pathsFromBase(baseDir)
}

// pathsFromBase lays out the standard directory structure under baseDir:
//
//	baseDir/
//	  ├── data/
//	  │   ├── masterfiles/   (raw fixed-width master files)
//	  │   └── reports/       (decoded workbooks and CSV reports)
//	  └── logs/              (application logs)
func pathsFromBase(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	reportsDir := filepath.Join(dataDir, "reports")

	return &Paths{
		ExecutableDir:  baseDir,
		DataDir:        dataDir,
		MasterFilesDir: filepath.Join(dataDir, "masterfiles"),
		ReportsDir:     reportsDir,
		LogsDir:        filepath.Join(baseDir, "logs"),

		DecodedWorkbook: filepath.Join(reportsDir, DefaultWorkbookName),
		DetailCSV:       filepath.Join(reportsDir, DetailCSVName),
		HeaderCSV:       filepath.Join(reportsDir, HeaderCSVName),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.MasterFilesDir,
		p.ReportsDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}

		if logger != nil {
			logger.Debug("Ensured directory exists",
				slog.String("directory", dir))
		}
	}

	return nil
}

// GetRelativePath returns a path relative to the executable directory
func (p *Paths) GetRelativePath(subpath string) string {
	return filepath.Join(p.ExecutableDir, subpath)
}

// GetMasterFilePath returns the full path for a master file
func (p *Paths) GetMasterFilePath(filename string) string {
	return filepath.Join(p.MasterFilesDir, filename)
}

// GetReportPath returns the full path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs the resolved paths for debugging
func (p *Paths) LogPathResolution() {
	logger := slog.Default()
	if logger == nil {
		return
	}
	logger.Debug("Resolved application paths",
		slog.String("executable_dir", p.ExecutableDir),
		slog.String("data_dir", p.DataDir),
		slog.String("masterfiles_dir", p.MasterFilesDir),
		slog.String("reports_dir", p.ReportsDir),
		slog.String("logs_dir", p.LogsDir))
}
