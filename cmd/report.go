package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spoonlabs/yt-report/internal/config"
	"github.com/spoonlabs/yt-report/internal/display"
	"github.com/spoonlabs/yt-report/internal/export"
	"github.com/spoonlabs/yt-report/internal/model"
	"github.com/spoonlabs/yt-report/internal/service/report"
	"github.com/spoonlabs/yt-report/internal/service/youtube"
)

// maxWindow caps the report window, mirroring the date picker limit
const maxWindow = 92 * 24 * time.Hour

// reportCmd builds an upload report for a channel and date window
var reportCmd = &cobra.Command{
	Use:   "report [CHANNEL]",
	Short: "Report a channel's uploads inside a date window",
	Long: `Resolve a channel reference, list every video it published between
--start and --end, and report each one with short/long classification,
views, likes and comments.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reference := args[0]

		startArg, _ := cmd.Flags().GetString("start")
		endArg, _ := cmd.Flags().GetString("end")
		window, err := parseWindow(startArg, endArg)
		if err != nil {
			return err
		}

		kindArg, _ := cmd.Flags().GetString("type")
		kind := report.Kind(kindArg)
		if !report.ValidKind(kind) {
			return fmt.Errorf("invalid --type %q (expected all, short or long)", kindArg)
		}

		sortArg, _ := cmd.Flags().GetString("sort")
		sortKey := report.SortKey(sortArg)
		if !report.ValidSortKey(sortKey) {
			return fmt.Errorf("invalid --sort %q (expected published, title, views, likes or comments)", sortArg)
		}
		orderArg, _ := cmd.Flags().GetString("order")
		if orderArg != "asc" && orderArg != "desc" {
			return fmt.Errorf("invalid --order %q (expected asc or desc)", orderArg)
		}

		formatArg, _ := cmd.Flags().GetString("format")
		if formatArg != "table" && formatArg != "json" {
			return fmt.Errorf("invalid --format %q (expected table or json)", formatArg)
		}

		// Create service with timeout context; probing large windows takes a while
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
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

		// Run the pipeline: resolve -> collect -> enrich
		channelID, err := youtubeService.Resolve(ctx, reference)
		if err != nil {
			return fmt.Errorf("failed to resolve channel: %w", err)
		}

		stubs, err := youtubeService.Collect(ctx, channelID, window)
		if err != nil {
			return fmt.Errorf("failed to collect videos: %w", err)
		}

		ids := make([]string, 0, len(stubs))
		for _, stub := range stubs {
			ids = append(ids, stub.ID)
		}

		videos, err := youtubeService.Enrich(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to enrich videos: %w", err)
		}

		rows := report.Filter(videos, kind)
		report.Sort(rows, sortKey, orderArg == "desc")
		stats := report.Summarize(rows)

		switch formatArg {
		case "json":
			result, err := json.MarshalIndent(struct {
				ChannelID string            `json:"channel_id"`
				Stats     model.ReportStats `json:"stats"`
				Items     []*model.Video    `json:"items"`
			}{channelID, stats, rows}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to format result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(result))
		default:
			display.RenderTable(cmd.OutOrStdout(), rows, stats)
		}

		if xlsxPath, _ := cmd.Flags().GetString("xlsx"); xlsxPath != "" {
			if err := export.WriteFile(xlsxPath, rows, stats); err != nil {
				return fmt.Errorf("failed to write xlsx report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", xlsxPath)
		}

		return nil
	},
}

// parseWindow turns the --start/--end dates into a closed UTC window,
// with the end date inclusive
func parseWindow(start, end string) (model.DateWindow, error) {
	if start == "" || end == "" {
		return model.DateWindow{}, fmt.Errorf("both --start and --end are required (YYYY-MM-DD)")
	}

	startTime, err := time.Parse("2006-01-02", start)
	if err != nil {
		return model.DateWindow{}, fmt.Errorf("invalid --start date %q (expected YYYY-MM-DD)", start)
	}
	endTime, err := time.Parse("2006-01-02", end)
	if err != nil {
		return model.DateWindow{}, fmt.Errorf("invalid --end date %q (expected YYYY-MM-DD)", end)
	}
	endTime = endTime.Add(24*time.Hour - time.Second)

	if startTime.After(endTime) {
		return model.DateWindow{}, fmt.Errorf("--start must not be after --end")
	}
	if endTime.Sub(startTime) > maxWindow {
		return model.DateWindow{}, fmt.Errorf("window must not exceed 3 months")
	}

	return model.DateWindow{Start: startTime, End: endTime}, nil
}

func init() {
	reportCmd.Flags().String("start", "", "Window start date, inclusive (YYYY-MM-DD)")
	reportCmd.Flags().String("end", "", "Window end date, inclusive (YYYY-MM-DD)")
	reportCmd.Flags().String("type", "all", "Filter by video type (all, short, long)")
	reportCmd.Flags().String("sort", "published", "Sort key (published, title, views, likes, comments)")
	reportCmd.Flags().String("order", "desc", "Sort order (asc, desc)")
	reportCmd.Flags().String("format", "table", "Output format (table, json)")
	reportCmd.Flags().String("xlsx", "", "Also write the report to this xlsx file")

	rootCmd.AddCommand(reportCmd)
}
