package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/fanreduce/pkg/pipeline"
	"pkg.jsn.cam/fanreduce/pkg/presets"
	"pkg.jsn.cam/fanreduce/pkg/prompt"
)

var (
	promptPreset    string
	promptInput     string
	promptGoal      string
	promptChunkSize int
	promptOutDir    string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Render task prompts for an external LLM operator",
	Long: `Render the map and reduce phases as markdown task prompts so an
operator can run them through an LLM by hand. Outputs collected from
the map prompts feed the reduce prompt.`,
}

var promptMapCmd = &cobra.Command{
	Use:   "map",
	Short: "Render one map prompt per input chunk",
	Run: func(cmd *cobra.Command, args []string) {
		if !presets.IsValidPreset(promptPreset) {
			fmt.Fprintf(os.Stderr, "Error: unknown preset: %s\n", promptPreset)
			os.Exit(1)
		}

		items, err := pipeline.ChunkItems(context.Background(), promptInput, promptChunkSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if promptOutDir != "" {
			if err := os.MkdirAll(promptOutDir, 0755); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		for i, item := range items {
			text := prompt.BuildMapPrompt(promptPreset, promptGoal, item.Input)
			if promptOutDir == "" {
				if i > 0 {
					fmt.Println()
				}
				fmt.Println(text)
				continue
			}
			path := filepath.Join(promptOutDir, fmt.Sprintf("map-%03d.md", i+1))
			if err := os.WriteFile(path, []byte(text), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		if promptOutDir != "" {
			fmt.Printf("Wrote %d map prompts to %s\n", len(items), promptOutDir)
		}
	},
}

var promptReduceCmd = &cobra.Command{
	Use:   "reduce [map-output-file]...",
	Short: "Render the reduce prompt from collected map outputs",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !presets.IsValidPreset(promptPreset) {
			fmt.Fprintf(os.Stderr, "Error: unknown preset: %s\n", promptPreset)
			os.Exit(1)
		}

		var chunkOutputs [][]string
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			text := strings.TrimRight(string(data), "\n")
			if text == "" {
				chunkOutputs = append(chunkOutputs, nil)
				continue
			}
			chunkOutputs = append(chunkOutputs, strings.Split(text, "\n"))
		}

		fmt.Println(prompt.BuildReducePrompt(promptPreset, promptGoal, chunkOutputs))
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.AddCommand(promptMapCmd)
	promptCmd.AddCommand(promptReduceCmd)

	promptCmd.PersistentFlags().StringVarP(&promptPreset, "preset", "p", "", "Reduction preset the prompts describe")
	promptCmd.PersistentFlags().StringVarP(&promptGoal, "goal", "g", "", "One-line goal written into each prompt")
	promptMapCmd.Flags().StringVarP(&promptInput, "input", "i", "", "Path to the input file")
	promptMapCmd.Flags().IntVar(&promptChunkSize, "chunk-size", 100, "Lines per map chunk")
	promptMapCmd.Flags().StringVar(&promptOutDir, "out-dir", "", "Write one prompt file per chunk into this directory")
}
