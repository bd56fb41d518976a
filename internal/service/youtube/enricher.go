package youtube

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/spoonlabs/yt-report/internal/errors"
	"github.com/spoonlabs/yt-report/internal/model"
)

// metadataBatchSize is the upstream hard limit on IDs per metadata request
const metadataBatchSize = 50

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func shortsURL(videoID string) string {
	return "https://www.youtube.com/shorts/" + videoID
}

// Enrich fetches full metadata for the given video IDs in capped-size
// batches, classifies each video as short- or long-form, and returns the
// rows sorted by publish time descending. Metadata is all-or-nothing: any
// failed batch fails the whole call with no partial results. Probe
// unreliability, by contrast, is expected and absorbed by the heuristic.
func (s *service) Enrich(ctx context.Context, ids []string) ([]*model.Video, error) {
	unique := dedupeIDs(ids)
	if len(unique) == 0 {
		return []*model.Video{}, nil
	}

	videos := make([]*model.Video, 0, len(unique))
	for _, batch := range chunkIDs(unique, metadataBatchSize) {
		data, err := s.catalog.ListVideos(ctx, batch)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeExternal, "video metadata fetch failed")
		}
		for _, d := range data {
			videos = append(videos, &model.Video{
				ID:              d.ID,
				Title:           d.Title,
				Description:     d.Description,
				URL:             watchURL(d.ID),
				Thumbnail:       d.Thumbnail,
				PublishedAt:     d.PublishedAt,
				ViewCount:       d.ViewCount,
				LikeCount:       d.LikeCount,
				CommentCount:    d.CommentCount,
				DurationSeconds: ParseISODuration(d.RawDuration),
			})
		}
	}

	s.classifyAll(ctx, videos)
	s.logger.Debug().Int("videos", len(videos)).Msg("enriched and classified videos")

	// Postcondition, not fetch-order artifact: newest first, ID as a
	// deterministic tie-break
	sort.Slice(videos, func(i, j int) bool {
		if !videos[i].PublishedAt.Equal(videos[j].PublishedAt) {
			return videos[i].PublishedAt.After(videos[j].PublishedAt)
		}
		return videos[i].ID < videos[j].ID
	})

	return videos, nil
}

// classifyAll drives the classification state machine for every video.
// Videos at or above the duration cutoff are finalized without probing; the
// rest are live-verified with a bounded concurrent fan-out. Each worker
// writes only its own slot, and Wait is the join barrier, so no goroutine
// outlives this call.
func (s *service) classifyAll(ctx context.Context, videos []*model.Video) {
	states := make([]classification, len(videos))

	g, probeCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.probeLimit)
	for i, v := range videos {
		states[i] = classifyByDuration(v.DurationSeconds)
		if !states[i].needsProbe() {
			continue
		}
		i, v := i, v
		g.Go(func() error {
			c := states[i].applyProbe(s.prober.Probe(probeCtx, v.ID))
			states[i] = c.applyHeuristic(v.Title, v.Description)
			return nil
		})
	}
	// Workers never return errors; a failed probe is an indeterminate
	// signal, not a failure of the enrichment
	_ = g.Wait()

	for i, v := range videos {
		v.IsShort = states[i].isShort()
		if v.IsShort {
			v.URL = shortsURL(v.ID)
		} else {
			v.URL = watchURL(v.ID)
		}
	}
}

// dedupeIDs drops empty and repeated IDs while preserving first-seen order
func dedupeIDs(ids []string) []string {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// chunkIDs partitions ids into batches of at most size elements
func chunkIDs(ids []string, size int) [][]string {
	var batches [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches
}
