package version

// Version is overridden at build time:
//
//	go build -ldflags "-X semf/internal/version.Version=v1.2.3" ./cmd/...
var Version = "dev"
