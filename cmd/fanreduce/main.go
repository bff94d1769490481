package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/fanreduce/internal/job"
)

var (
	dbPath  string
	jsonDir string
	docsDir string
)

var rootCmd = &cobra.Command{
	Use:   "fanreduce",
	Short: "Chunked map-reduce over line-oriented files",
	Long: `fanreduce chunks a line-oriented input file, maps the chunks
concurrently, and merges the outputs with a named reduction preset.

Get started:
  fanreduce presets                                List reduction presets
  fanreduce run --preset wordcount --input in.txt  Run a job
  fanreduce jobs list                              Show recorded jobs`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRunner builds a job runner from the persistence flags. An
// explicit --json-dir replaces the default database unless --db was
// also given.
func newRunner(cmd *cobra.Command) (*job.Runner, error) {
	cfg := job.Config{DBPath: dbPath, JSONDir: jsonDir, TaskDocDir: docsDir}
	if jsonDir != "" && !cmd.Flags().Changed("db") {
		cfg.DBPath = ""
	}
	return job.NewRunner(cfg)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "fanreduce.db", "Path to the bbolt job database")
	rootCmd.PersistentFlags().StringVar(&jsonDir, "json-dir", "", "Persist jobs as JSON files in this directory instead of the database")
	rootCmd.PersistentFlags().StringVar(&docsDir, "docs-dir", "", "Write a markdown task document per finished job into this directory")
}
