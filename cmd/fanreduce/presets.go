package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/fanreduce/pkg/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available reduction presets",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-12s %s\n", "PRESET", "DESCRIPTION")
		fmt.Println("─────────────────────────────────────────────────────────────────────")
		for _, name := range presets.ListPresets() {
			desc, err := presets.GetDescription(name)
			if err != nil {
				continue
			}
			fmt.Printf("%-12s %s\n", name, desc)
		}
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
