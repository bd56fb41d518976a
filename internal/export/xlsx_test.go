package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spoonlabs/yt-report/internal/model"
)

func reportFixture() ([]*model.Video, model.ReportStats) {
	items := []*model.Video{
		{
			ID:           "vid1",
			Title:        "First upload",
			URL:          "https://www.youtube.com/shorts/vid1",
			PublishedAt:  time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
			ViewCount:    1200,
			LikeCount:    100,
			CommentCount: 10,
			IsShort:      true,
		},
		{
			ID:           "vid2",
			Title:        "Second upload",
			URL:          "https://www.youtube.com/watch?v=vid2",
			PublishedAt:  time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
			ViewCount:    800,
			LikeCount:    50,
			CommentCount: 5,
		},
	}
	stats := model.ReportStats{
		TotalItems:  2,
		SumViews:    2000,
		SumLikes:    150,
		SumComments: 15,
		AvgViews:    1000,
		AvgLikes:    75,
		AvgComments: 7,
	}
	return items, stats
}

func TestBuildWorkbook(t *testing.T) {
	items, stats := reportFixture()

	f, err := BuildWorkbook(items, stats)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Videos"}, f.GetSheetList())

	header, err := f.GetCellValue("Videos", "C1")
	require.NoError(t, err)
	assert.Equal(t, "Title", header)

	title, err := f.GetCellValue("Videos", "C2")
	require.NoError(t, err)
	assert.Equal(t, "First upload", title)

	kind, err := f.GetCellValue("Videos", "B3")
	require.NoError(t, err)
	assert.Equal(t, "long", kind)

	url, err := f.GetCellValue("Videos", "D2")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/shorts/vid1", url)

	link, target, err := f.GetCellHyperLink("Videos", "D2")
	require.NoError(t, err)
	assert.True(t, link)
	assert.Equal(t, "https://www.youtube.com/shorts/vid1", target)

	views, err := f.GetCellValue("Videos", "F3")
	require.NoError(t, err)
	assert.Equal(t, "800", views)

	// Summary block starts two rows below the last data row
	label, err := f.GetCellValue("Videos", "C5")
	require.NoError(t, err)
	assert.Equal(t, "Total videos", label)

	total, err := f.GetCellValue("Videos", "D6")
	require.NoError(t, err)
	assert.Equal(t, "2000", total)
}

func TestWriteFile(t *testing.T) {
	items, stats := reportFixture()
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, WriteFile(path, items, stats))
	assert.FileExists(t, path)
}
