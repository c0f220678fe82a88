package usecase

import (
	"os"

	"github.com/m-mizutani/mekupdater/pkg/domain/interfaces"
)

// NewSetupPathFinderWithReadDir replaces directory enumeration so tests can
// control entry order and inject enumeration faults.
func NewSetupPathFinderWithReadDir(readDir func(dir string) ([]os.DirEntry, error), opts ...Option) interfaces.SetupPathFinder {
	f := NewSetupPathFinder(opts...).(*setupPathFinder)
	f.readDir = readDir
	return f
}
