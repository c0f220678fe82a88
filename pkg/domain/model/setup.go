package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mekupdater/pkg/domain/types"
)

// SetupPathCode identifies how a setup path search ended
type SetupPathCode string

const (
	SetupPathNone                   SetupPathCode = ""
	SetupPathSuccess                SetupPathCode = "success"
	SetupPathCannotEnumerateFolders SetupPathCode = "cannot-enumerate-folders"
	SetupPathNoMatchingFolder       SetupPathCode = "no-matching-folder"
	SetupPathCannotEnumerateFiles   SetupPathCode = "cannot-enumerate-files"
	SetupPathNoMatchingFile         SetupPathCode = "no-matching-file"
)

// String returns the string representation of SetupPathCode.
func (c SetupPathCode) String() string {
	return string(c)
}

// SetupSearchInfo is the input of a setup path search: the directory an
// archive was extracted into and the repository the archive came from.
type SetupSearchInfo struct {
	ExtractionRoot types.DirectoryPath
	OwnerName      string
	RepoName       string
}

// NewSetupSearchInfo validates its arguments and builds a SetupSearchInfo.
func NewSetupSearchInfo(root types.DirectoryPath, owner, repo string) (SetupSearchInfo, error) {
	if _, err := types.NewDirectoryPath(root.String()); err != nil {
		return SetupSearchInfo{}, goerr.Wrap(err, "invalid extraction root")
	}
	if strings.TrimSpace(owner) == "" {
		return SetupSearchInfo{}, goerr.New("owner name is required", goerr.V("owner", owner))
	}
	if strings.TrimSpace(repo) == "" {
		return SetupSearchInfo{}, goerr.New("repository name is required", goerr.V("repo", repo))
	}
	return SetupSearchInfo{
		ExtractionRoot: root,
		OwnerName:      owner,
		RepoName:       repo,
	}, nil
}

// FolderPrefix is the name prefix of the folder an archive of this
// repository extracts into, e.g. "owner-repo-".
func (i SetupSearchInfo) FolderPrefix() string {
	return i.OwnerName + "-" + i.RepoName + "-"
}

// SetupPathFinderResult is the outcome of either stage of a setup path
// search. InstallerPath is set only when Success is true.
type SetupPathFinderResult struct {
	Success       bool                 `json:"success"`
	InstallerPath *types.InstallerPath `json:"installer_path,omitempty"`
	Code          SetupPathCode        `json:"code"`
	Message       string               `json:"message"`
}

// SetupFound builds a successful SetupPathFinderResult.
func SetupFound(path types.InstallerPath, message string) SetupPathFinderResult {
	return SetupPathFinderResult{
		Success:       true,
		InstallerPath: &path,
		Code:          SetupPathSuccess,
		Message:       message,
	}
}

// SetupNotFound builds a failed SetupPathFinderResult.
func SetupNotFound(code SetupPathCode, message string) SetupPathFinderResult {
	return SetupPathFinderResult{
		Code:    code,
		Message: message,
	}
}
