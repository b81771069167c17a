package version

// Set at build time with -ldflags "-X github.com/bnema/persona-chat/internal/version.Version=...".
var Version = "dev"
