package youtube

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spoonlabs/yt-report/internal/model"
)

// mockCatalog is a mock implementation of Catalog for testing
type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) LookupChannelID(ctx context.Context, ref ChannelRef) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

func (m *mockCatalog) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	args := m.Called(ctx, channelID)
	return args.String(0), args.Error(1)
}

func (m *mockCatalog) SearchPage(ctx context.Context, channelID string, window model.DateWindow, pageToken string) (*Page, error) {
	args := m.Called(ctx, channelID, window, pageToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Page), args.Error(1)
}

func (m *mockCatalog) PlaylistPage(ctx context.Context, playlistID, pageToken string) (*Page, error) {
	args := m.Called(ctx, playlistID, pageToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Page), args.Error(1)
}

func (m *mockCatalog) ListVideos(ctx context.Context, ids []string) ([]*VideoData, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*VideoData), args.Error(1)
}

// mockProber is a mock implementation of Prober for testing
type mockProber struct {
	mock.Mock
}

func (m *mockProber) Probe(ctx context.Context, videoID string) ProbeResult {
	args := m.Called(ctx, videoID)
	return args.Get(0).(ProbeResult)
}

// fixedProber returns the same result for every probe without recording calls
type fixedProber struct {
	result ProbeResult
}

func (p fixedProber) Probe(ctx context.Context, videoID string) ProbeResult {
	return p.result
}
