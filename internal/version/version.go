// Package version provides application version information.
// The version can be set at build time using ldflags:
//
//	go build -ldflags "-X github.com/typhonjs-tcg/scrydex-sub001/internal/version.Version=v1.2.3"
package version

// Version is the application version stamped into every card database
// envelope the writer produces. It defaults to "dev" and can be
// overridden at build time using ldflags.
var Version = "dev"
