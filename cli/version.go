package cli

import "runtime/debug"

// devVersion is the placeholder version of untagged builds.
const devVersion = "dev"

// resolveVersion prefers the ldflags version and falls back to the module
// version recorded in the build info.
func resolveVersion(v string) string {
	if v != "" && v != devVersion {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			return mv
		}
	}
	return devVersion
}
