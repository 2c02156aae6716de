// ABOUTME: The build subcommand: hashes the CSS bundle, persists the key file,
// ABOUTME: and writes hash-named asset copies. Gated by INKPRESS_HASH_ASSETS.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress/assets"
	"github.com/inkpress/inkpress/web"
)

var assetNames []string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Hash static assets and write cache-busting copies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := web.ConfigFromEnv()
		if !cfg.HashAssets {
			log.Printf("build: INKPRESS_HASH_ASSETS is off, skipping asset hashing")
			return nil
		}

		key, err := assets.BuildHashedAssets(cfg.PublicDir, assetNames, cfg.KeyFile, assets.DefaultHashLength)
		if err != nil {
			return fmt.Errorf("hashing assets: %w", err)
		}
		log.Printf("build: hash key %s written to %s", key, cfg.KeyFile)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringSliceVar(&assetNames, "assets", []string{"style.css", "favicon.ico"},
		"asset file names in the public directory to hash and copy (first one keys the hash)")
}
