// Package export writes the video report as an xlsx workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/spoonlabs/yt-report/internal/model"
)

const sheetName = "Videos"

var headers = []string{"No.", "Type", "Title", "URL", "Uploaded", "Views", "Likes", "Comments"}

var columnWidths = map[string]float64{
	"A": 6, "B": 8, "C": 48, "D": 54, "E": 20, "F": 14, "G": 14, "H": 14,
}

// BuildWorkbook renders the rows and summary statistics into a workbook.
// The caller owns the returned file and should Close it.
func BuildWorkbook(items []*model.Video, stats model.ReportStats) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, err
		}
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "H1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}
	if err := f.AutoFilter(sheetName, "A1:H1", nil); err != nil {
		return nil, err
	}

	linkStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "1155CC", Underline: "single"}})
	if err != nil {
		return nil, err
	}

	for i, item := range items {
		row := i + 2
		values := []interface{}{
			i + 1,
			videoType(item),
			item.Title,
			item.URL,
			item.PublishedAt.Local().Format("2006-01-02 15:04"),
			item.ViewCount,
			item.LikeCount,
			item.CommentCount,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}

		urlCell := fmt.Sprintf("D%d", row)
		if err := f.SetCellHyperLink(sheetName, urlCell, item.URL, "External"); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, urlCell, urlCell, linkStyle); err != nil {
			return nil, err
		}
	}

	if err := writeStats(f, len(items)+3, stats); err != nil {
		return nil, err
	}

	return f, nil
}

// WriteFile renders the report and saves it to path
func WriteFile(path string, items []*model.Video, stats model.ReportStats) error {
	f, err := BuildWorkbook(items, stats)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// writeStats appends the summary block below the rows
func writeStats(f *excelize.File, startRow int, stats model.ReportStats) error {
	lines := []struct {
		label string
		value interface{}
	}{
		{"Total videos", stats.TotalItems},
		{"Total views", stats.SumViews},
		{"Total likes", stats.SumLikes},
		{"Total comments", stats.SumComments},
		{"Average views", stats.AvgViews},
		{"Average likes", stats.AvgLikes},
		{"Average comments", stats.AvgComments},
	}

	for i, line := range lines {
		row := startRow + i
		if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), line.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), line.value); err != nil {
			return err
		}
	}
	return nil
}

func videoType(item *model.Video) string {
	if item.IsShort {
		return "short"
	}
	return "long"
}
