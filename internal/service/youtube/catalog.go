package youtube

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/spoonlabs/yt-report/internal/model"
)

// Page is one page of a paginated feed. An empty NextToken means the feed
// is exhausted.
type Page struct {
	Stubs     []model.VideoStub
	NextToken string
}

// VideoData is the raw per-video metadata returned by the catalog, before
// duration parsing and shorts classification.
type VideoData struct {
	ID           string
	Title        string
	Description  string
	Thumbnail    string
	PublishedAt  time.Time
	RawDuration  string
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
}

// Catalog is the upstream video catalog (the YouTube Data API in production).
// It exists as an interface so the pipeline can be tested without network access.
type Catalog interface {
	// LookupChannelID resolves a classified channel reference to a channel ID.
	// Returns empty string when no channel matches.
	LookupChannelID(ctx context.Context, ref ChannelRef) (string, error)
	// UploadsPlaylistID returns the ID of the channel's "all uploads" playlist,
	// or empty string when the channel does not exist.
	UploadsPlaylistID(ctx context.Context, channelID string) (string, error)
	// SearchPage fetches one page of videos published inside window, scoped
	// server-side by publishedAfter/publishedBefore.
	SearchPage(ctx context.Context, channelID string, window model.DateWindow, pageToken string) (*Page, error)
	// PlaylistPage fetches one page of a playlist, newest-first.
	PlaylistPage(ctx context.Context, playlistID, pageToken string) (*Page, error)
	// ListVideos fetches full metadata for up to one batch of video IDs.
	ListVideos(ctx context.Context, ids []string) ([]*VideoData, error)
}

// googleCatalog implements Catalog using the official YouTube Data API v3 client
type googleCatalog struct {
	svc *ytapi.Service
}

// newGoogleCatalog creates a Catalog backed by the YouTube Data API.
// The API key is injected here; nothing below reads ambient credential state.
func newGoogleCatalog(ctx context.Context, apiKey string, opts ...option.ClientOption) (*googleCatalog, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &googleCatalog{svc: svc}, nil
}

func (c *googleCatalog) LookupChannelID(ctx context.Context, ref ChannelRef) (string, error) {
	call := c.svc.Channels.List([]string{"id"}).MaxResults(1).Context(ctx)
	switch ref.Kind {
	case RefChannelID:
		call = call.Id(ref.Value)
	case RefLegacyUser:
		call = call.ForUsername(ref.Value)
	default:
		call = call.ForHandle(ref.Value)
	}

	resp, err := call.Do()
	if err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", nil
	}
	return resp.Items[0].Id, nil
}

func (c *googleCatalog) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	resp, err := c.svc.Channels.List([]string{"contentDetails"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil {
		return "", nil
	}
	return resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

func (c *googleCatalog) SearchPage(ctx context.Context, channelID string, window model.DateWindow, pageToken string) (*Page, error) {
	call := c.svc.Search.List([]string{"id", "snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(feedPageSize).
		PublishedAfter(window.Start.UTC().Format(time.RFC3339)).
		PublishedBefore(window.End.UTC().Format(time.RFC3339)).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, err
	}

	page := &Page{NextToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		stub := model.VideoStub{ID: item.Id.VideoId}
		if item.Snippet != nil {
			stub.PublishedAt = parseTimestamp(item.Snippet.PublishedAt)
		}
		page.Stubs = append(page.Stubs, stub)
	}
	log.Debug().Str("channel_id", channelID).Int("items", len(page.Stubs)).Msg("fetched search page")
	return page, nil
}

func (c *googleCatalog) PlaylistPage(ctx context.Context, playlistID, pageToken string) (*Page, error) {
	call := c.svc.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(feedPageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, err
	}

	page := &Page{NextToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		page.Stubs = append(page.Stubs, model.VideoStub{
			ID:          item.ContentDetails.VideoId,
			PublishedAt: parseTimestamp(item.ContentDetails.VideoPublishedAt),
		})
	}
	log.Debug().Str("playlist_id", playlistID).Int("items", len(page.Stubs)).Msg("fetched playlist page")
	return page, nil
}

func (c *googleCatalog) ListVideos(ctx context.Context, ids []string) ([]*VideoData, error) {
	resp, err := c.svc.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(ids...).
		MaxResults(int64(len(ids))).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	videos := make([]*VideoData, 0, len(resp.Items))
	for _, item := range resp.Items {
		v := &VideoData{ID: item.Id}
		if item.Snippet != nil {
			v.Title = item.Snippet.Title
			v.Description = item.Snippet.Description
			v.PublishedAt = parseTimestamp(item.Snippet.PublishedAt)
			v.Thumbnail = pickThumbnail(item.Snippet.Thumbnails)
		}
		if item.ContentDetails != nil {
			v.RawDuration = item.ContentDetails.Duration
		}
		if item.Statistics != nil {
			v.ViewCount = int64(item.Statistics.ViewCount)
			v.LikeCount = int64(item.Statistics.LikeCount)
			v.CommentCount = int64(item.Statistics.CommentCount)
		}
		videos = append(videos, v)
	}
	log.Debug().Int("requested", len(ids)).Int("returned", len(videos)).Msg("fetched video metadata batch")
	return videos, nil
}

// thumbnailPriority is the descending quality order for picking a thumbnail;
// the first present URL wins. Optional fields stay out of the typed result shape.
var thumbnailPriority = []func(*ytapi.ThumbnailDetails) *ytapi.Thumbnail{
	func(t *ytapi.ThumbnailDetails) *ytapi.Thumbnail { return t.Maxres },
	func(t *ytapi.ThumbnailDetails) *ytapi.Thumbnail { return t.Standard },
	func(t *ytapi.ThumbnailDetails) *ytapi.Thumbnail { return t.High },
	func(t *ytapi.ThumbnailDetails) *ytapi.Thumbnail { return t.Medium },
	func(t *ytapi.ThumbnailDetails) *ytapi.Thumbnail { return t.Default },
}

func pickThumbnail(details *ytapi.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	for _, pick := range thumbnailPriority {
		if thumb := pick(details); thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}

func parseTimestamp(iso string) time.Time {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}
	}
	return t
}
