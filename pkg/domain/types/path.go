package types

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrInvalidDirectoryPath is wrapped by every DirectoryPath validation error.
	ErrInvalidDirectoryPath = errors.New("invalid directory path")

	// ErrInvalidInstallerPath is wrapped by every InstallerPath validation error.
	ErrInvalidInstallerPath = errors.New("invalid installer path")
)

// installerExtensions are the file extensions accepted as installer
// executables, compared case-insensitively.
var installerExtensions = []string{".exe", ".msi"}

// reservedNameChars cannot appear in a file name on the platforms the
// installers target.
const reservedNameChars = `<>:"|?*`

type (
	// DirectoryPath is a well-formed filesystem path to a directory. The
	// zero value is invalid; build one with NewDirectoryPath.
	DirectoryPath string

	// InstallerPath is a well-formed filesystem path to an installer
	// executable. The zero value is invalid; build one with NewInstallerPath.
	InstallerPath string
)

// NewDirectoryPath validates s and returns it as a DirectoryPath. The path
// is not required to exist.
func NewDirectoryPath(s string) (DirectoryPath, error) {
	if err := validatePath(s); err != nil {
		return "", goerr.Wrap(ErrInvalidDirectoryPath, err.Error(), goerr.V("path", s))
	}
	return DirectoryPath(s), nil
}

// String returns the string representation of the DirectoryPath.
func (p DirectoryPath) String() string { return string(p) }

// Join appends name to the directory path.
func (p DirectoryPath) Join(name string) string {
	return filepath.Join(string(p), name)
}

// NewInstallerPath validates s and returns it as an InstallerPath. The file
// name must carry an installer extension and no reserved characters.
func NewInstallerPath(s string) (InstallerPath, error) {
	if err := validatePath(s); err != nil {
		return "", goerr.Wrap(ErrInvalidInstallerPath, err.Error(), goerr.V("path", s))
	}

	name := filepath.Base(s)
	if strings.TrimSpace(name) == "" || name == "." || name == string(filepath.Separator) {
		return "", goerr.Wrap(ErrInvalidInstallerPath, "missing file name", goerr.V("path", s))
	}
	if strings.ContainsAny(name, reservedNameChars) {
		return "", goerr.Wrap(ErrInvalidInstallerPath, "file name contains reserved characters", goerr.V("path", s))
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return "", goerr.Wrap(ErrInvalidInstallerPath, "file name contains control characters", goerr.V("path", s))
		}
	}
	if !hasInstallerExtension(name) {
		return "", goerr.Wrap(ErrInvalidInstallerPath, "not an installer file",
			goerr.V("path", s),
			goerr.V("allowed_extensions", installerExtensions),
		)
	}

	return InstallerPath(s), nil
}

// String returns the string representation of the InstallerPath.
func (p InstallerPath) String() string { return string(p) }

// FileName returns the last element of the path.
func (p InstallerPath) FileName() string { return filepath.Base(string(p)) }

func validatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("path must be non-empty")
	}
	if strings.ContainsRune(s, 0) {
		return errors.New("path contains NUL byte")
	}
	return nil
}

func hasInstallerExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range installerExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
