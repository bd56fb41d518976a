// Package report computes presentation-ready views over enriched video rows:
// summary statistics, short/long filtering, and the sort orders the report
// table offers.
package report

import (
	"sort"

	"github.com/spoonlabs/yt-report/internal/model"
)

// Kind filters rows by their short-form classification
type Kind string

const (
	KindAll   Kind = "all"
	KindShort Kind = "short"
	KindLong  Kind = "long"
)

// ValidKind reports whether k is a recognized filter kind
func ValidKind(k Kind) bool {
	return k == KindAll || k == KindShort || k == KindLong
}

// Summarize computes count/sum/average statistics over any set of rows.
// Total function: an empty set yields all zeros.
func Summarize(items []*model.Video) model.ReportStats {
	stats := model.ReportStats{TotalItems: len(items)}
	for _, item := range items {
		stats.SumViews += item.ViewCount
		stats.SumLikes += item.LikeCount
		stats.SumComments += item.CommentCount
	}
	if stats.TotalItems > 0 {
		n := int64(stats.TotalItems)
		stats.AvgViews = stats.SumViews / n
		stats.AvgLikes = stats.SumLikes / n
		stats.AvgComments = stats.SumComments / n
	}
	return stats
}

// Filter returns the rows matching the given kind, preserving order
func Filter(items []*model.Video, kind Kind) []*model.Video {
	if kind == KindAll || kind == "" {
		return items
	}
	filtered := make([]*model.Video, 0, len(items))
	for _, item := range items {
		if (kind == KindShort) == item.IsShort {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortKey selects the column rows are ordered by
type SortKey string

const (
	SortByPublished SortKey = "published"
	SortByTitle     SortKey = "title"
	SortByViews     SortKey = "views"
	SortByLikes     SortKey = "likes"
	SortByComments  SortKey = "comments"
)

// ValidSortKey reports whether k is a recognized sort key
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortByPublished, SortByTitle, SortByViews, SortByLikes, SortByComments:
		return true
	}
	return false
}

// Sort orders items in place by the given key. Ties fall back to video ID
// so equal inputs always produce equal output order.
func Sort(items []*model.Video, key SortKey, descending bool) {
	less := lessFunc(key)
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if descending {
			a, b = b, a
		}
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return items[i].ID < items[j].ID
	})
}

func lessFunc(key SortKey) func(a, b *model.Video) bool {
	switch key {
	case SortByTitle:
		return func(a, b *model.Video) bool { return a.Title < b.Title }
	case SortByViews:
		return func(a, b *model.Video) bool { return a.ViewCount < b.ViewCount }
	case SortByLikes:
		return func(a, b *model.Video) bool { return a.LikeCount < b.LikeCount }
	case SortByComments:
		return func(a, b *model.Video) bool { return a.CommentCount < b.CommentCount }
	default:
		return func(a, b *model.Video) bool { return a.PublishedAt.Before(b.PublishedAt) }
	}
}
