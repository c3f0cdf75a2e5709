package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duynguyendang/docdates/internal/manager"
	"github.com/duynguyendang/docdates/pkg/config"
	"github.com/duynguyendang/docdates/pkg/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [docs_dir]",
	Short: "Run an extraction and serve the results as an interactive web table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.DocsDir = args[0]
		}

		ctx := cmd.Context()
		p, err := newPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer p.close()

		mgr := manager.NewReportManager()
		rep, err := p.run(ctx, cfg.DocsDir, cfg.ContinueOnError)
		if err != nil {
			return err
		}
		mgr.Add(rep)

		addr := serveAddr
		if addr == "" {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			addr = ":" + port
		}

		fmt.Printf("Serving extraction results on %s\n", addr)
		srv := server.NewServer(mgr, cfg.DocsDir)
		return srv.Run(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (defaults to :$PORT or :8080)")
	rootCmd.AddCommand(serveCmd)
}
