package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/fanreduce/internal/job"
)

var (
	runSpecPath    string
	runPreset      string
	runInput       string
	runTitle       string
	runChunkSize   int
	runConcurrency int
	runMaxRetries  int
	runItemTimeout string
	runOutput      string
	runQuiet       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a reduction job",
	Long: `Run a reduction job over a line-oriented input file.

The job is described either by flags or by a YAML spec file
(--spec job.yaml); flags override spec file values. The finished
job is recorded and can be inspected later with "fanreduce jobs".`,
	Run: func(cmd *cobra.Command, args []string) {
		spec := job.DefaultSpec()
		if runSpecPath != "" {
			loaded, err := job.LoadSpec(runSpecPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			spec = loaded
		}
		if cmd.Flags().Changed("preset") {
			spec.Preset = runPreset
		}
		if cmd.Flags().Changed("input") {
			spec.InputPath = runInput
		}
		if cmd.Flags().Changed("title") {
			spec.Title = runTitle
		}
		if cmd.Flags().Changed("chunk-size") {
			spec.ChunkSize = runChunkSize
		}
		if cmd.Flags().Changed("concurrency") {
			spec.Concurrency = runConcurrency
		}
		if cmd.Flags().Changed("max-retries") {
			spec.MaxRetries = runMaxRetries
		}
		if cmd.Flags().Changed("item-timeout") {
			spec.ItemTimeout = runItemTimeout
		}

		runner, err := newRunner(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer runner.Close()

		submitted, err := runner.Submit(spec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if info, err := os.Stat(spec.InputPath); err == nil {
			fmt.Printf("Input: %s (%s)\n", spec.InputPath, humanize.Bytes(uint64(info.Size())))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var bar *progressbar.ProgressBar
		onProgress := func(done, total int) {
			if runQuiet {
				return
			}
			if bar == nil {
				bar = progressbar.Default(int64(total), "mapping")
			}
			_ = bar.Set(done)
		}

		finished, err := runner.Execute(ctx, submitted.ID, onProgress)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printSummary(finished)

		if runOutput != "" {
			data := strings.Join(finished.Results, "\n") + "\n"
			if err := os.WriteFile(runOutput, []byte(data), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("\nResults written to %s\n", runOutput)
			return
		}

		fmt.Printf("\nResults (%d lines):\n", len(finished.Results))
		fmt.Println("─────────────────────────────────────────────────────────")
		for _, line := range finished.Results {
			fmt.Println(line)
		}
	},
}

func printSummary(j *job.Job) {
	fmt.Printf("\nJob completed:\n")
	fmt.Printf("  ID:       %s\n", j.ID)
	fmt.Printf("  Preset:   %s\n", j.Preset)
	fmt.Printf("  Duration: %v\n", j.Duration().Round(time.Millisecond))
	fmt.Printf("  Maps:     %d ok, %d failed\n", j.SuccessfulMaps, j.FailedMaps)
	fmt.Printf("  Stats:    %s in, %s out, %s merged\n",
		humanize.Comma(int64(j.InputCount)),
		humanize.Comma(int64(j.OutputCount)),
		humanize.Comma(int64(j.MergedCount)))
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runSpecPath, "spec", "", "Path to a YAML job spec")
	runCmd.Flags().StringVarP(&runPreset, "preset", "p", "", "Reduction preset (see: fanreduce presets)")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Path to the input file")
	runCmd.Flags().StringVar(&runTitle, "title", "", "Human-readable job title for listings and task documents")
	runCmd.Flags().IntVar(&runChunkSize, "chunk-size", 0, "Lines per map chunk")
	runCmd.Flags().IntVarP(&runConcurrency, "concurrency", "c", 0, "Concurrent map workers")
	runCmd.Flags().IntVar(&runMaxRetries, "max-retries", 0, "Retries per failed chunk")
	runCmd.Flags().StringVar(&runItemTimeout, "item-timeout", "", "Per-chunk timeout, e.g. 30s")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Write result lines to a file instead of stdout")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Suppress the progress bar")
}
