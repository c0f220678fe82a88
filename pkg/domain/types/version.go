package types

// Version is the application version, overwritten at build time via
// -ldflags "-X github.com/m-mizutani/mekupdater/pkg/domain/types.Version=..."
var Version = "dev"
