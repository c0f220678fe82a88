package github

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mekupdater/pkg/domain/interfaces"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
)

const (
	// DefaultAPIURL is the root of the public GitHub REST API
	DefaultAPIURL = "https://api.github.com"

	// DefaultUserAgent is sent when no user agent is configured. The API
	// rejects requests without one.
	DefaultUserAgent = "mekupdater"

	// DefaultTimeout bounds a single request including reading the body
	DefaultTimeout = 30 * time.Second

	latestReleaseSuffix = "/releases/latest"
	releasesSuffix      = "/releases"
)

// Client queries the release API of a single repository. Its fields are
// fixed at construction, so one Client may be shared between goroutines.
type Client struct {
	baseAddress string
	httpClient  *http.Client
	ownsClient  bool
	userAgent   string
	timeout     time.Duration
	logger      *slog.Logger
}

var _ interfaces.RepositoryClient = (*Client)(nil)

// config holds values collected from options before the client is built
type config struct {
	apiURL     string
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
	logger     *slog.Logger
}

// Option is a functional option for Client configuration
type Option func(*config)

// WithAPIURL replaces the API root, e.g. for GitHub Enterprise or test servers
func WithAPIURL(apiURL string) Option {
	return func(c *config) {
		c.apiURL = strings.TrimRight(apiURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests. The caller keeps
// ownership: Close does not release its connections.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithUserAgent sets the User-Agent header. An empty value keeps the default.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for https://api.github.com/repos/{owner}/{repo}.
// It fails only when owner or repo is blank.
func NewClient(owner, repo string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, goerr.New("repository owner is required", goerr.V("owner", owner))
	}
	if strings.TrimSpace(repo) == "" {
		return nil, goerr.New("repository name is required", goerr.V("repo", repo))
	}

	cfg := &config{
		apiURL:    DefaultAPIURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client := &Client{
		baseAddress: cfg.apiURL + "/repos/" + owner + "/" + repo,
		httpClient:  cfg.httpClient,
		userAgent:   cfg.userAgent,
		timeout:     cfg.timeout,
		logger:      cfg.logger.With("owner", owner, "repo", repo),
	}
	if client.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		client.httpClient = &http.Client{Transport: transport}
		client.ownsClient = true
	}

	return client, nil
}

// BaseAddress returns the repository API root this client was built for
func (c *Client) BaseAddress() string {
	return c.baseAddress
}

// Close releases pooled connections held by the client's own transport.
// It is safe to call more than once.
func (c *Client) Close() error {
	if c.ownsClient {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}

// GetRepositoryInfo fetches the repository document
func (c *Client) GetRepositoryInfo(ctx context.Context) model.OperationResult[model.RepositoryInfo] {
	result := compose[model.RepositoryInfo](c.get(ctx, c.baseAddress))
	c.logResult(ctx, "repository info", result.Outcome, result.Message)
	return result
}

// GetLatestRelease fetches the latest published release
func (c *Client) GetLatestRelease(ctx context.Context) model.OperationResult[model.Release] {
	result := compose[model.Release](c.get(ctx, c.baseAddress+latestReleaseSuffix))
	c.logResult(ctx, "latest release", result.Outcome, result.Message)
	return result
}

// GetReleases fetches the list of releases
func (c *Client) GetReleases(ctx context.Context) model.OperationResult[[]model.Release] {
	result := compose[[]model.Release](c.get(ctx, c.baseAddress+releasesSuffix))
	c.logResult(ctx, "releases", result.Outcome, result.Message)
	return result
}

// GetLatestReleaseAssets returns the assets of the latest release. It makes
// the same request as GetLatestRelease and inherits its failure verbatim.
func (c *Client) GetLatestReleaseAssets(ctx context.Context) model.OperationResult[[]model.Asset] {
	return model.AssetsOf(c.GetLatestRelease(ctx))
}

func (c *Client) logResult(ctx context.Context, operation string, outcome model.Outcome, message string) {
	if outcome.IsSuccess() {
		c.logger.DebugContext(ctx, "Repository API operation succeeded",
			"operation", operation,
		)
		return
	}
	c.logger.WarnContext(ctx, "Repository API operation failed",
		"operation", operation,
		"outcome", outcome,
		"message", message,
	)
}
