// Package display renders enriched video rows as a terminal table.
package display

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/spoonlabs/yt-report/internal/model"
)

const maxTitleWidth = 48

// RenderTable writes the video rows and their summary statistics to w
func RenderTable(w io.Writer, items []*model.Video, stats model.ReportStats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "Type", "Title", "Uploaded", "Views", "Likes", "Comments"})
	for i, item := range items {
		t.AppendRow(table.Row{
			i + 1,
			videoType(item),
			item.Title,
			item.PublishedAt.Local().Format("2006-01-02 15:04"),
			item.ViewCount,
			item.LikeCount,
			item.CommentCount,
		})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d video(s)", stats.TotalItems), "total",
		stats.SumViews, stats.SumLikes, stats.SumComments})
	t.AppendFooter(table.Row{"", "", "", "average", stats.AvgViews, stats.AvgLikes, stats.AvgComments})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: maxTitleWidth},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 6, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 7, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	t.Render()
}

func videoType(item *model.Video) string {
	if item.IsShort {
		return "short"
	}
	return "long"
}
