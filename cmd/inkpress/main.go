// ABOUTME: CLI entrypoint for inkpress with serve and build subcommands.
// ABOUTME: Loads .env before configuration so local overrides apply to both phases.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "inkpress",
	Short: "A flat-file personal blog server",
	Long: `inkpress serves a small personal blog from a directory of Markdown files
with YAML front matter. The build subcommand hashes static assets for
immutable caching; the serve subcommand loads content once and serves it.`,
	Version:      version,
	SilenceUsage: true,
}

func main() {
	loadDotEnv(".env")

	rootCmd.AddCommand(serveCmd, buildCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
