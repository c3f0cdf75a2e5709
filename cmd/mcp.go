package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/duynguyendang/docdates/internal/manager"
	"github.com/duynguyendang/docdates/pkg/config"
	"github.com/duynguyendang/docdates/pkg/mcp"
	"github.com/duynguyendang/docdates/pkg/report"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the extraction pipeline as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		p, err := newPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer p.close()

		mgr := manager.NewReportManager()
		runner := func(ctx context.Context, docsDir string, continueOnError bool) (*report.Report, error) {
			return p.run(ctx, docsDir, continueOnError)
		}
		return mcp.Run(ctx, mgr, runner)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
