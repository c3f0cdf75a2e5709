package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "docdates",
	Short: "Extract dates and summaries from documents into a report",
	Long: `docdates reads documents (PDF or plain text) from a directory, asks a
Gemini-backed retrieval oracle for each document's created date, posted date
and summary, and writes the results to an Excel report. A server mode renders
the same records as an interactive web table.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional YAML config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
