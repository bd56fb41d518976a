package youtube

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/spoonlabs/yt-report/internal/config"
	"github.com/spoonlabs/yt-report/internal/errors"
	"github.com/spoonlabs/yt-report/internal/model"
)

// Service is the channel ingestion pipeline: resolve a channel reference,
// collect its uploads inside a date window, enrich and classify them.
// Implementations are stateless between invocations; independent requests
// may run concurrently on one Service.
type Service interface {
	Resolve(ctx context.Context, reference string) (string, error)
	Collect(ctx context.Context, channelID string, window model.DateWindow) ([]model.VideoStub, error)
	Enrich(ctx context.Context, ids []string) ([]*model.Video, error)
}

// service implements Service
type service struct {
	catalog    Catalog
	prober     Prober
	collector  string
	probeLimit int
	logger     zerolog.Logger
}

// NewService creates a Service backed by the YouTube Data API. The API
// credential comes from the injected configuration; its absence is a hard
// configuration error raised before any network call.
func NewService(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (Service, error) {
	if cfg.YouTubeAPIKey == "" {
		return nil, errors.New(errors.CodeConfig, "youtube_api_key is not configured (set it in the config file or the YOUTUBE_API_KEY environment variable)")
	}

	catalog, err := newGoogleCatalog(ctx, cfg.YouTubeAPIKey, opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "failed to create YouTube API client")
	}

	probeLimit := cfg.ProbeConcurrency
	if probeLimit <= 0 {
		probeLimit = config.DefaultProbeConcurrency
	}

	return &service{
		catalog:    catalog,
		prober:     NewHTTPProber(),
		collector:  cfg.Collector,
		probeLimit: probeLimit,
		logger:     log.Logger,
	}, nil
}

// NewServiceWithCatalog creates a Service with custom collaborators (for testing)
func NewServiceWithCatalog(catalog Catalog, prober Prober, collector string, probeLimit int) Service {
	if probeLimit <= 0 {
		probeLimit = config.DefaultProbeConcurrency
	}
	return &service{
		catalog:    catalog,
		prober:     prober,
		collector:  collector,
		probeLimit: probeLimit,
		logger:     zerolog.Nop(),
	}
}
