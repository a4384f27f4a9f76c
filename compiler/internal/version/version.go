package version

import "runtime/debug"

// Version is overridden at link time with -ldflags "-X .../version.Version=v0.3.0".
var Version = "dev"

// String returns "pyropec <version>", appending the VCS revision when the
// binary was built from a checkout.
func String() string {
	s := "pyropec " + Version
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, kv := range info.Settings {
			if kv.Key == "vcs.revision" && len(kv.Value) >= 7 {
				s += " (" + kv.Value[:7] + ")"
			}
		}
	}
	return s
}
