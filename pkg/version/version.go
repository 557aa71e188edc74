package version

// Overridden at build time with:
//
//	-ldflags "-X github.com/app-sre/graphgate/pkg/version.version=..."
var version = "dev"

func Version() string {
	return version
}
