package youtube

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spoonlabs/yt-report/internal/config"
	"github.com/spoonlabs/yt-report/internal/errors"
)

func TestClassifyReference(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      ChannelRef
		wantError bool
	}{
		{
			name: "handle with sigil",
			raw:  "@demo",
			want: ChannelRef{Kind: RefHandle, Value: "demo"},
		},
		{
			name: "handle with surrounding whitespace",
			raw:  "  @demo  ",
			want: ChannelRef{Kind: RefHandle, Value: "demo"},
		},
		{
			name: "only the first sigil is stripped",
			raw:  "@@demo",
			want: ChannelRef{Kind: RefHandle, Value: "@demo"},
		},
		{
			name: "full handle URL",
			raw:  "https://www.youtube.com/@demo",
			want: ChannelRef{Kind: RefHandle, Value: "demo"},
		},
		{
			name: "legacy username path",
			raw:  "user/spoon",
			want: ChannelRef{Kind: RefLegacyUser, Value: "spoon"},
		},
		{
			name: "legacy username in full URL with trailing path",
			raw:  "https://www.youtube.com/user/spoon/videos",
			want: ChannelRef{Kind: RefLegacyUser, Value: "spoon"},
		},
		{
			name: "channel id path",
			raw:  "channel/UCuAXFkgsw1L7xaCfnd5JJOw",
			want: ChannelRef{Kind: RefChannelID, Value: "UCuAXFkgsw1L7xaCfnd5JJOw"},
		},
		{
			name: "channel id path with query string",
			raw:  "https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw?view=videos",
			want: ChannelRef{Kind: RefChannelID, Value: "UCuAXFkgsw1L7xaCfnd5JJOw"},
		},
		{
			name: "bare channel id matching the fixed shape",
			raw:  "UCuAXFkgsw1L7xaCfnd5JJOw",
			want: ChannelRef{Kind: RefChannelID, Value: "UCuAXFkgsw1L7xaCfnd5JJOw"},
		},
		{
			name: "UC prefix but wrong length falls back to handle",
			raw:  "UCshort",
			want: ChannelRef{Kind: RefHandle, Value: "UCshort"},
		},
		{
			name: "bare name assumed to be a handle",
			raw:  "spoon",
			want: ChannelRef{Kind: RefHandle, Value: "spoon"},
		},
		{
			name:      "empty input",
			raw:       "",
			wantError: true,
		},
		{
			name:      "whitespace only",
			raw:       "   ",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ClassifyReference(tt.raw)
			if tt.wantError {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidArg, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestService_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		mockSetup func(*mockCatalog)
		wantID    string
		wantCode  string
	}{
		{
			name:      "handle resolves",
			reference: "@demo",
			mockSetup: func(m *mockCatalog) {
				m.On("LookupChannelID", mock.Anything, ChannelRef{Kind: RefHandle, Value: "demo"}).
					Return("UCuAXFkgsw1L7xaCfnd5JJOw", nil)
			},
			wantID: "UCuAXFkgsw1L7xaCfnd5JJOw",
		},
		{
			name:      "explicit id confirmed by lookup",
			reference: "UCuAXFkgsw1L7xaCfnd5JJOw",
			mockSetup: func(m *mockCatalog) {
				m.On("LookupChannelID", mock.Anything, ChannelRef{Kind: RefChannelID, Value: "UCuAXFkgsw1L7xaCfnd5JJOw"}).
					Return("UCuAXFkgsw1L7xaCfnd5JJOw", nil)
			},
			wantID: "UCuAXFkgsw1L7xaCfnd5JJOw",
		},
		{
			name:      "legacy username resolves",
			reference: "user/spoon",
			mockSetup: func(m *mockCatalog) {
				m.On("LookupChannelID", mock.Anything, ChannelRef{Kind: RefLegacyUser, Value: "spoon"}).
					Return("UCuAXFkgsw1L7xaCfnd5JJOw", nil)
			},
			wantID: "UCuAXFkgsw1L7xaCfnd5JJOw",
		},
		{
			name:      "no matching channel",
			reference: "@missing",
			mockSetup: func(m *mockCatalog) {
				m.On("LookupChannelID", mock.Anything, mock.Anything).Return("", nil)
			},
			wantCode: errors.CodeNotFound,
		},
		{
			name:      "upstream failure",
			reference: "@demo",
			mockSetup: func(m *mockCatalog) {
				m.On("LookupChannelID", mock.Anything, mock.Anything).
					Return("", assert.AnError)
			},
			wantCode: errors.CodeExternal,
		},
		{
			name:      "empty reference fails without lookup",
			reference: "",
			mockSetup: func(m *mockCatalog) {},
			wantCode:  errors.CodeInvalidArg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := new(mockCatalog)
			tt.mockSetup(catalog)
			svc := NewServiceWithCatalog(catalog, fixedProber{result: ProbeIndeterminate}, config.CollectorSearch, 4)

			id, err := svc.Resolve(context.Background(), tt.reference)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			catalog.AssertExpectations(t)
		})
	}
}
