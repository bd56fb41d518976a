package model

import "time"

// VideoStub is a video reference collected from a channel feed,
// before full metadata has been fetched
type VideoStub struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

// Video represents a fully enriched YouTube video row
type Video struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	URL             string    `json:"url"`
	Thumbnail       string    `json:"thumbnail"`
	PublishedAt     time.Time `json:"published_at"`
	ViewCount       int64     `json:"view_count"`
	LikeCount       int64     `json:"like_count"`
	CommentCount    int64     `json:"comment_count"`
	DurationSeconds int       `json:"duration_seconds"`
	IsShort         bool      `json:"is_short"`
}

// DateWindow is a closed publish-time interval. Start must not be after End;
// callers validate before handing the window to the pipeline.
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the window is well-formed
func (w DateWindow) Valid() bool {
	return !w.Start.After(w.End)
}

// Contains reports whether t falls inside the closed interval
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ReportStats holds count/sum/average statistics over a set of videos
type ReportStats struct {
	TotalItems  int   `json:"total_items"`
	SumViews    int64 `json:"sum_views"`
	SumLikes    int64 `json:"sum_likes"`
	SumComments int64 `json:"sum_comments"`
	AvgViews    int64 `json:"avg_views"`
	AvgLikes    int64 `json:"avg_likes"`
	AvgComments int64 `json:"avg_comments"`
}
