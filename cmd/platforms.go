package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/kartoza/kartoza-clip-studio/internal/export"
	"github.com/spf13/cobra"
)

var platformsJsonOutput bool

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List export platform presets",
	Long:  `List the platform presets available for export with their aspect ratio and maximum duration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets := export.Presets()

		if platformsJsonOutput {
			data, err := json.MarshalIndent(presets, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		for _, p := range presets {
			limit := "unlimited"
			if p.MaxDuration > 0 {
				limit = fmt.Sprintf("%.0fs max", p.MaxDuration)
			}
			fmt.Printf("%-10s  %-16s  %-5s  %s\n", p.ID, p.Name, p.AspectRatio, limit)
		}

		return nil
	},
}

func init() {
	platformsCmd.Flags().BoolVar(&platformsJsonOutput, "json", false, "Output presets as JSON")
}
