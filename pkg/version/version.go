package version

// Version is set at build time with -ldflags "-X github.com/ib-77/composable/pkg/version.Version=...".
var Version = "dev"
