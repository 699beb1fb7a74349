package weft

// Version is the version of the node. Set at build time with
//
//	-ldflags "-X github.com/kittyverse/weft.Version=v0.3.0"
var Version = "v0.1.0-dev"

// GitCommit is set at build time.
var GitCommit = ""

// FullVersion returns the version and commit, if known.
func FullVersion() string {
	if GitCommit == "" {
		return Version
	}
	return Version + " " + GitCommit
}
