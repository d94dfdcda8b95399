package version

// Version is the anythink version. Overridden at build time with
// -ldflags "-X .../internal/version.Version=...".
var Version = "0.1.0"

// GitCommit is the commit the binary was built from, set with -ldflags.
var GitCommit string

// FullVersion returns the version with the git commit when known.
func FullVersion() string {
	if GitCommit == "" {
		return Version
	}
	return Version + " (" + GitCommit + ")"
}
