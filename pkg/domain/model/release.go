package model

import "time"

// RepositoryInfo is the subset of the repository API document that the
// updater reads.
type RepositoryInfo struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	Description   string    `json:"description"`
	HTMLURL       string    `json:"html_url"`
	DefaultBranch string    `json:"default_branch"`
	Private       bool      `json:"private"`
	Archived      bool      `json:"archived"`
	Owner         Owner     `json:"owner"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Owner is the repository owner account.
type Owner struct {
	Login string `json:"login"`
	Type  string `json:"type"`
}

// Release represents a GitHub release
type Release struct {
	ID          int64     `json:"id"`
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Body        string    `json:"body"` // Changelog/release notes
	Draft       bool      `json:"draft"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
	ZipballURL  string    `json:"zipball_url"`
	Assets      []Asset   `json:"assets"`
}

// Asset represents a downloadable file attached to a release
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
	ContentType        string `json:"content_type"`
}

// AssetsOf projects the asset list out of a latest-release result. A failed
// release result is inherited as-is; there is no separate failure mode.
func AssetsOf(release OperationResult[Release]) OperationResult[[]Asset] {
	return Map(release, func(r Release) []Asset {
		return r.Assets
	})
}

// UpdateCheckResult holds the result of comparing the running version with
// the latest published release.
type UpdateCheckResult struct {
	Outcome         Outcome  `json:"outcome"`
	Message         string   `json:"message,omitempty"`
	CurrentVersion  string   `json:"current_version"`
	LatestVersion   string   `json:"latest_version,omitempty"`
	UpdateAvailable bool     `json:"update_available"`
	Release         *Release `json:"release,omitempty"`
}
