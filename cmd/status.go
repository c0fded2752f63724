package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kartoza/kartoza-clip-studio/internal/tui"
	"github.com/spf13/cobra"
)

var jsonOutput bool

var statusCmd = &cobra.Command{
	Use:   "status <job-id>",
	Short: "Show export job status",
	Long:  `Query the render service for the status of an export job, including progress and the download URL once complete.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := tui.LoadServices()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		job, err := svcs.Render.JobStatus(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get job status: %w", err)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(job, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Job:      %s\n", job.JobID)
		fmt.Printf("Status:   %s\n", job.Status)
		fmt.Printf("Progress: %.0f%%\n", job.Progress)
		if job.DownloadURL != "" {
			fmt.Printf("Download: %s\n", job.DownloadURL)
		}
		if job.Error != "" {
			fmt.Printf("Error:    %s\n", job.Error)
		}

		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output status as JSON")
}
