package domain

import "path/filepath"

const (
	// RetrialDirName is the name of the internal workspace directory.
	RetrialDirName = ".retrial"

	// BaselineFileName is the default name of the baseline file inside RetrialDirName.
	BaselineFileName = "baseline.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "retrial.yaml"

	// ManifestFileName is the default name of the dependency manifest.
	ManifestFileName = "dependencies.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultBaselinePath returns the default path of the baseline file.
// It joins .retrial and baseline.json.
func DefaultBaselinePath() string {
	return filepath.Join(RetrialDirName, BaselineFileName)
}
