package version

// Version is overridden at build time:
// -ldflags "-X github.com/bnema/airella-bridge/internal/version.Version=v0.3.0"
var Version = "dev"
