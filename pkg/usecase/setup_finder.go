package usecase

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/mekupdater/pkg/domain/interfaces"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
	"github.com/m-mizutani/mekupdater/pkg/domain/types"
)

type setupPathFinder struct {
	logger  *slog.Logger
	readDir func(dir string) ([]os.DirEntry, error)
}

// NewSetupPathFinder creates a finder that locates the installer inside an
// extracted release archive.
func NewSetupPathFinder(opts ...Option) interfaces.SetupPathFinder {
	o := buildOptions(opts)
	return &setupPathFinder{
		logger:  o.logger,
		readDir: readDirUnsorted,
	}
}

// Find runs the folder search and, if a folder matched, the file search
// inside it. A failed folder search is returned unchanged.
func (f *setupPathFinder) Find(info model.SetupSearchInfo) model.SetupPathFinderResult {
	logger := f.logger.With(
		"extraction_root", info.ExtractionRoot.String(),
		"owner", info.OwnerName,
		"repo", info.RepoName,
	)

	folderName, result := f.findSetupFolder(info)
	if !result.Success {
		logger.Debug("No setup folder found", "code", result.Code, "message", result.Message)
		return result
	}
	logger.Debug("Found setup folder", "folder", folderName)

	setupFolder, err := types.NewDirectoryPath(info.ExtractionRoot.Join(folderName))
	if err != nil {
		return model.SetupNotFound(model.SetupPathCannotEnumerateFiles,
			fmt.Sprintf("can't build setup folder path because of %T: %v", err, err))
	}

	result = f.findSetupFile(setupFolder)
	if result.Success {
		logger.Debug("Found setup file", "path", result.InstallerPath.String())
	} else {
		logger.Debug("No setup file found", "code", result.Code, "message", result.Message)
	}
	return result
}

// findSetupFolder returns the name of the first immediate subdirectory of
// the extraction root whose trimmed name starts with "<owner>-<repo>-".
// Entries are visited in the order the filesystem returns them.
func (f *setupPathFinder) findSetupFolder(info model.SetupSearchInfo) (string, model.SetupPathFinderResult) {
	root := info.ExtractionRoot.String()
	entries, err := f.readDir(root)
	if err != nil {
		return "", model.SetupNotFound(model.SetupPathCannotEnumerateFolders,
			fmt.Sprintf("can't enumerate folders because of %T: %v", err, err))
	}

	prefix := info.FolderPrefix()
	for _, entry := range entries {
		if !isDir(root, entry) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(entry.Name()), prefix) {
			return entry.Name(), model.SetupPathFinderResult{
				Success: true,
				Code:    model.SetupPathSuccess,
				Message: fmt.Sprintf("found setup folder '%s'", entry.Name()),
			}
		}
	}

	return "", model.SetupNotFound(model.SetupPathNoMatchingFolder,
		fmt.Sprintf("could not find folder matching: path '%s', repo owner '%s', repo name '%s'",
			root, info.OwnerName, info.RepoName))
}

// findSetupFile returns the first immediate file of setupFolder whose full
// path is a valid InstallerPath. Invalid candidates are skipped.
func (f *setupPathFinder) findSetupFile(setupFolder types.DirectoryPath) model.SetupPathFinderResult {
	dir := setupFolder.String()
	entries, err := f.readDir(dir)
	if err != nil {
		return model.SetupNotFound(model.SetupPathCannotEnumerateFiles,
			fmt.Sprintf("can't enumerate files because of %T: %v", err, err))
	}

	for _, entry := range entries {
		if isDir(dir, entry) {
			continue
		}
		path, err := types.NewInstallerPath(setupFolder.Join(entry.Name()))
		if err != nil {
			f.logger.Debug("Skipping setup file candidate", "name", entry.Name(), "reason", err.Error())
			continue
		}
		return model.SetupFound(path, fmt.Sprintf("found setup file at '%s'", path))
	}

	return model.SetupNotFound(model.SetupPathNoMatchingFile,
		fmt.Sprintf("could not find any setup file in folder '%s'", dir))
}

// readDirUnsorted lists dir without sorting, unlike os.ReadDir
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = d.Close() }()

	return d.ReadDir(-1)
}

// isDir reports whether entry is a directory, following symbolic links
func isDir(parent string, entry os.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	stat, err := os.Stat(filepath.Join(parent, entry.Name()))
	if err != nil {
		return false
	}
	return stat.IsDir()
}
