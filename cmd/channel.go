package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spoonlabs/yt-report/internal/config"
	"github.com/spoonlabs/yt-report/internal/service/youtube"
)

// channelCmd represents the channel command
var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "YouTube channel operations",
	Long:  `Operations for resolving YouTube channel references.`,
}

// channelResolveCmd resolves a channel reference to its canonical channel ID
var channelResolveCmd = &cobra.Command{
	Use:   "resolve [REFERENCE]",
	Short: "Resolve a channel reference to a channel ID",
	Long: `Resolve a handle (@name), legacy username (user/name), channel URL
(channel/UC...) or bare channel ID to the canonical channel ID.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reference := args[0]

		// Create service with timeout context
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Load configuration
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Create YouTube service
		youtubeService, err := youtube.NewService(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to create YouTube service: %w", err)
		}

		// Resolve channel reference
		channelID, err := youtubeService.Resolve(ctx, reference)
		if err != nil {
			return fmt.Errorf("failed to resolve channel: %w", err)
		}

		// Display result as JSON
		result, err := json.MarshalIndent(map[string]string{"channel_id": channelID}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		fmt.Println(string(result))
		return nil
	},
}

func init() {
	channelCmd.AddCommand(channelResolveCmd)
	rootCmd.AddCommand(channelCmd)
}
