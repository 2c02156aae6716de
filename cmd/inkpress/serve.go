// ABOUTME: The serve subcommand: loads the content index and hash key once,
// ABOUTME: then starts the HTTP server. Startup fails fast on any bad content file.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress/assets"
	"github.com/inkpress/inkpress/content"
	"github.com/inkpress/inkpress/web"
)

var bindFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load content and serve the site over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := web.ConfigFromEnv()
		if bindFlag != "" {
			cfg.Bind = bindFlag
		}

		index, err := content.Load(cfg.ContentDir)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}
		log.Printf("serve: loaded %d articles from %s", index.Len(), cfg.ContentDir)

		key, err := assets.LoadKey(cfg.KeyFile)
		if err != nil {
			return err
		}
		if key == "" {
			log.Printf("serve: no hash key at %s, cache busting disabled", cfg.KeyFile)
		} else {
			log.Printf("serve: asset hash key %s", key)
		}

		srv, err := web.NewServer(cfg, index, assets.NewResolver(key))
		if err != nil {
			return err
		}

		log.Printf("serve: listening on http://%s", cfg.Bind)
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&bindFlag, "bind", "", "listen address (overrides INKPRESS_BIND)")
}
