package config

import (
	"path/filepath"
)

const (
	// TaxdumpURL is the primary location of the NCBI taxonomy dump.
	TaxdumpURL = "https://ftp.ncbi.nlm.nih.gov/pub/taxonomy/taxdump.tar.gz"

	// FallbackURL keeps gzipped copies of names, nodes and merged dumps.
	FallbackURL = "https://github.com/rcsb/py-rcsb_exdb_assets/raw/master/fall_back/NCBI"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gntaxa"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gntaxa by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gntaxa by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DownloadDir returns the directory for downloaded dump files.
func DownloadDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "download")
}

// SnapshotDir returns the directory for taxonomy snapshots.
func SnapshotDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "snapshot")
}

// ExportDir returns the directory where export files are written
// by default.
func ExportDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "export")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gntaxa/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gntaxa/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
