package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/vnplayer/pkg/embedded"
)

func main() {
	embedded.Init(dataFS)

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vnplayer",
		Short: "Play pipe-delimited visual novel scripts",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(playCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(versionCmd())
	return root
}
