package cmd

import (
	"cmp"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is overridden with -ldflags "-X .../cmd.version=v1.2.3".
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		v, rev := buildVersion()
		fmt.Fprintf(cmd.OutOrStdout(), "geoquest %s", v)
		if rev != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " (%s)", rev)
		}
		fmt.Fprintf(cmd.OutOrStdout(), " %s\n", runtime.Version())
	},
}

// buildVersion prefers the linker-set version, then the module version
// recorded by `go install`, and reports a short VCS revision if known.
func buildVersion() (v, rev string) {
	v = version
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return cmp.Or(v, "(devel)"), ""
	}
	if v == "" && info.Main.Version != "" {
		v = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			rev = s.Value[:7]
		}
	}
	return cmp.Or(v, "(devel)"), rev
}
