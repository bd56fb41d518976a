package youtube

import (
	"context"

	"github.com/spoonlabs/yt-report/internal/config"
	"github.com/spoonlabs/yt-report/internal/errors"
	"github.com/spoonlabs/yt-report/internal/model"
)

// feedPageSize is the upstream page size for search and playlist feeds
const feedPageSize = 50

// Collect returns every video the channel published inside the window,
// duplicate-free, with publish timestamps. A channel with no uploads in
// range yields an empty slice, not an error.
func (s *service) Collect(ctx context.Context, channelID string, window model.DateWindow) ([]model.VideoStub, error) {
	if channelID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "channel ID is required")
	}
	if !window.Valid() {
		return nil, errors.New(errors.CodeInvalidArg, "window start is after window end")
	}

	if s.collector == config.CollectorUploads {
		return s.collectFromUploads(ctx, channelID, window)
	}
	return s.collectFromSearch(ctx, channelID, window)
}

// collectFromSearch paginates the search endpoint, which already bounds
// results by publish date server-side. Pagination is exhaustive: the loop
// only ends when the upstream stops returning a cursor.
func (s *service) collectFromSearch(ctx context.Context, channelID string, window model.DateWindow) ([]model.VideoStub, error) {
	stubs := make([]model.VideoStub, 0, feedPageSize)
	seen := make(map[string]struct{})

	pageToken := ""
	for {
		page, err := s.catalog.SearchPage(ctx, channelID, window, pageToken)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeExternal, "video search failed")
		}

		for _, stub := range page.Stubs {
			if _, dup := seen[stub.ID]; dup {
				continue
			}
			seen[stub.ID] = struct{}{}
			stubs = append(stubs, stub)
		}

		if page.NextToken == "" {
			break
		}
		pageToken = page.NextToken
	}

	s.logger.Debug().Str("channel_id", channelID).Int("videos", len(stubs)).Msg("collected window via search")
	return stubs, nil
}

// collectFromUploads paginates the channel's uploads playlist, which is
// unfiltered but ordered newest-first. Items newer than the window are
// skipped; the first item older than the window ends the whole loop, since
// the feed's publish times are monotonically non-increasing and nothing
// after it can be in range.
func (s *service) collectFromUploads(ctx context.Context, channelID string, window model.DateWindow) ([]model.VideoStub, error) {
	playlistID, err := s.catalog.UploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "uploads playlist lookup failed")
	}
	if playlistID == "" {
		return nil, errors.New(errors.CodeNotFound, "no uploads playlist for channel "+channelID)
	}

	stubs := make([]model.VideoStub, 0, feedPageSize)
	seen := make(map[string]struct{})

	pageToken := ""
	for {
		page, err := s.catalog.PlaylistPage(ctx, playlistID, pageToken)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeExternal, "uploads feed fetch failed")
		}

		pastWindow := false
		for _, stub := range page.Stubs {
			if stub.PublishedAt.IsZero() {
				// Private or still-processing uploads carry no publish time.
				// They cannot be placed in the window and must not end
				// pagination, so they are skipped outright.
				continue
			}
			if stub.PublishedAt.Before(window.Start) {
				pastWindow = true
				break
			}
			if !window.Contains(stub.PublishedAt) {
				continue
			}
			if _, dup := seen[stub.ID]; dup {
				continue
			}
			seen[stub.ID] = struct{}{}
			stubs = append(stubs, stub)
		}

		if pastWindow || page.NextToken == "" {
			break
		}
		pageToken = page.NextToken
	}

	s.logger.Debug().Str("channel_id", channelID).Int("videos", len(stubs)).Msg("collected window via uploads feed")
	return stubs, nil
}
