package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duynguyendang/docdates/pkg/config"
	"github.com/duynguyendang/docdates/pkg/report"
)

var (
	extractOut       string
	extractKeepGoing bool
	extractCacheDir  string
)

var extractCmd = &cobra.Command{
	Use:   "extract [docs_dir]",
	Short: "Extract dates and summaries from a directory into an Excel report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.DocsDir = args[0]
		}
		if cmd.Flags().Changed("out") {
			cfg.OutputPath = extractOut
		}
		if cmd.Flags().Changed("keep-going") {
			cfg.ContinueOnError = extractKeepGoing
		}
		if cmd.Flags().Changed("cache-dir") {
			cfg.CacheDir = extractCacheDir
		}

		ctx := cmd.Context()
		p, err := newPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer p.close()

		rep, err := p.run(ctx, cfg.DocsDir, cfg.ContinueOnError)
		if err != nil {
			return err
		}

		if err := report.WriteExcel(cfg.OutputPath, rep.Records); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractOut, "out", config.DefaultOutputPath, "output path for the Excel report")
	extractCmd.Flags().BoolVar(&extractKeepGoing, "keep-going", false, "record EXTRACTION_FAILED for failing documents instead of aborting")
	extractCmd.Flags().StringVar(&extractCacheDir, "cache-dir", config.DefaultCacheDir, "embedding cache directory (empty disables the disk cache)")
	rootCmd.AddCommand(extractCmd)
}
