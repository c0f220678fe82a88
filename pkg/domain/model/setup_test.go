package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/mekupdater/pkg/domain/model"
	"github.com/m-mizutani/mekupdater/pkg/domain/types"
)

func TestNewSetupSearchInfo(t *testing.T) {
	root, err := types.NewDirectoryPath("/tmp/extract")
	gt.NoError(t, err)

	tests := []struct {
		name    string
		root    types.DirectoryPath
		owner   string
		repo    string
		wantErr bool
	}{
		{name: "valid", root: root, owner: "acme", repo: "widget"},
		{name: "blank owner", root: root, owner: " ", repo: "widget", wantErr: true},
		{name: "blank repo", root: root, owner: "acme", repo: "", wantErr: true},
		{name: "zero root", root: types.DirectoryPath(""), owner: "acme", repo: "widget", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := model.NewSetupSearchInfo(tt.root, tt.owner, tt.repo)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, info.FolderPrefix(), "acme-widget-")
			gt.Equal(t, info.ExtractionRoot, root)
		})
	}
}

func TestSetupPathFinderResult_Constructors(t *testing.T) {
	path, err := types.NewInstallerPath("/tmp/extract/acme-widget-1.0/setup.exe")
	gt.NoError(t, err)

	found := model.SetupFound(path, "found")
	gt.True(t, found.Success)
	gt.Equal(t, found.Code, model.SetupPathSuccess)
	gt.Equal(t, *found.InstallerPath, path)

	missing := model.SetupNotFound(model.SetupPathNoMatchingFile, "nothing")
	gt.Equal(t, missing.Success, false)
	gt.Equal(t, missing.Code, model.SetupPathNoMatchingFile)
	gt.V(t, missing.InstallerPath).Nil()
}
