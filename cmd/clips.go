package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kartoza/kartoza-clip-studio/internal/clips"
	"github.com/kartoza/kartoza-clip-studio/internal/tui"
	"github.com/spf13/cobra"
)

var (
	clipsChannel    string
	clipsJsonOutput bool
)

var clipsCmd = &cobra.Command{
	Use:   "clips",
	Short: "List clips in the library",
	Long:  `List clips available in the remote clip library with their duration and status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := tui.LoadServices()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := svcs.Clips.List(ctx, clips.ListOptions{Channel: clipsChannel})
		if err != nil {
			return fmt.Errorf("failed to list clips: %w", err)
		}

		if clipsJsonOutput {
			data, err := json.MarshalIndent(resp.Clips, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if len(resp.Clips) == 0 {
			fmt.Println("No clips found.")
			return nil
		}

		for _, c := range resp.Clips {
			title := c.StreamTitle
			if title == "" {
				title = c.ClipID
			}
			fmt.Printf("%-36s  %6.1fs  %-10s  %s\n", c.ClipID, c.Duration, c.Status, title)
		}
		fmt.Printf("\n%d clip(s)\n", resp.Total)

		return nil
	},
}

func init() {
	clipsCmd.Flags().StringVar(&clipsChannel, "channel", "", "Filter clips by channel")
	clipsCmd.Flags().BoolVar(&clipsJsonOutput, "json", false, "Output clips as JSON")
}
