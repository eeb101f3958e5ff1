package version

// Version is overridden at build time with -ldflags "-X nmsa/internal/version.Version=...".
var Version = "dev"
