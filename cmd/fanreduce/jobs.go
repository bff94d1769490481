package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/fanreduce/internal/job"
)

var showResults bool

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect and manage recorded jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded jobs",
	Run: func(cmd *cobra.Command, args []string) {
		runner, err := newRunner(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer runner.Close()

		jobs := runner.ListJobs()
		if len(jobs) == 0 {
			fmt.Println("No jobs found")
			return
		}

		fmt.Printf("%-36s %-10s %-12s %-20s %s\n", "JOB ID", "STATUS", "PRESET", "SUBMITTED", "DURATION")
		fmt.Println("─────────────────────────────────────────────────────────────────────────────────────────")
		for _, j := range jobs {
			fmt.Printf("%-36s %-10s %-12s %-20s %v\n",
				j.ID,
				j.Status,
				j.Preset,
				j.SubmittedAt.Format("2006-01-02 15:04:05"),
				j.Duration().Round(time.Millisecond))
		}
	},
}

var jobsShowCmd = &cobra.Command{
	Use:   "show [job-id]",
	Short: "Show one job in detail",
	Long:  `Show one job in detail. Without an ID, shows the most recently finished job.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runner, err := newRunner(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer runner.Close()

		jobID := runner.LastJobID()
		if len(args) > 0 {
			jobID = args[0]
		}
		if jobID == "" {
			fmt.Fprintln(os.Stderr, "Error: no job ID given and no job finished yet")
			os.Exit(1)
		}

		j, err := runner.GetJob(jobID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printJob(&j)

		if showResults && len(j.Results) > 0 {
			fmt.Printf("\nResults (%d lines):\n", len(j.Results))
			fmt.Println("─────────────────────────────────────────────────────────")
			for _, line := range j.Results {
				fmt.Println(line)
			}
		}
	},
}

var jobsArchiveCmd = &cobra.Command{
	Use:   "archive [job-id]",
	Short: "Archive a job's task document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runner, err := newRunner(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer runner.Close()

		dest, err := runner.ArchiveDoc(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Task document archived to %s\n", dest)
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete [job-id]",
	Short: "Delete a job record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runner, err := newRunner(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer runner.Close()

		if err := runner.DeleteJob(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Job deleted: %s\n", args[0])
	},
}

func printJob(j *job.Job) {
	fmt.Printf("Job Details:\n")
	fmt.Printf("  ID:          %s\n", j.ID)
	if j.Title != "" {
		fmt.Printf("  Title:       %s\n", j.Title)
	}
	fmt.Printf("  Status:      %s\n", j.Status)
	fmt.Printf("  Preset:      %s\n", j.Preset)
	fmt.Printf("  Input Path:  %s\n", j.InputPath)
	fmt.Printf("  Chunk Size:  %d lines\n", j.ChunkSize)
	fmt.Printf("  Concurrency: %d\n", j.Concurrency)
	if j.ItemTimeoutMs > 0 {
		fmt.Printf("  Timeout:     %v per chunk\n", time.Duration(j.ItemTimeoutMs)*time.Millisecond)
	}
	fmt.Printf("  Submitted:   %s\n", j.SubmittedAt.Format("2006-01-02 15:04:05"))

	if !j.StartedAt.IsZero() {
		fmt.Printf("  Started:     %s\n", j.StartedAt.Format("2006-01-02 15:04:05"))
	}
	if !j.CompletedAt.IsZero() {
		fmt.Printf("  Completed:   %s\n", j.CompletedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Duration:    %v\n", j.Duration().Round(time.Millisecond))
	}

	if j.Status == job.StatusCompleted {
		fmt.Printf("\nReduction:\n")
		fmt.Printf("  Maps:    %d/%d succeeded (%v map phase)\n",
			j.SuccessfulMaps, j.SuccessfulMaps+j.FailedMaps,
			time.Duration(j.MapPhaseMs)*time.Millisecond)
		fmt.Printf("  Inputs:  %s\n", humanize.Comma(int64(j.InputCount)))
		fmt.Printf("  Outputs: %s\n", humanize.Comma(int64(j.OutputCount)))
		fmt.Printf("  Merged:  %s\n", humanize.Comma(int64(j.MergedCount)))
	}

	if j.Error != "" {
		fmt.Printf("\nError: %s\n", j.Error)
	}
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsShowCmd)
	jobsCmd.AddCommand(jobsArchiveCmd)
	jobsCmd.AddCommand(jobsDeleteCmd)
	jobsShowCmd.Flags().BoolVar(&showResults, "results", false, "Also print the job's result lines")
}
