package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the application version (called from main)
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "kartoza-clip-studio",
	Short: "Terminal clip editor for the Kartoza render service",
	Long: `Kartoza Clip Studio is a terminal editor for short-form video clips.

It supports:
  - Browsing the remote clip library with inline thumbnails
  - Trimming clips on a gesture-driven timeline
  - Text and meme overlays with per-overlay visibility windows
  - Platform export presets (TikTok, Instagram Reels, YouTube Shorts, Twitter/X)
  - Asynchronous export through the render service with live progress

Running without arguments starts the interactive editor.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTUI(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(clipsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(versionCmd)
}
