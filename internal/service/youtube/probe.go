package youtube

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// ProbeResult is the tri-state outcome of a live shorts probe. Indeterminate
// is not an error: it means the probe produced no usable evidence and the
// textual heuristic decides instead.
type ProbeResult int

const (
	// ProbeIndeterminate means the probe yielded no classification signal
	ProbeIndeterminate ProbeResult = iota
	// ProbeShort means the shorts URL answered directly
	ProbeShort
	// ProbeWatch means the shorts URL redirected to the watch page
	ProbeWatch
)

// Prober checks whether a video is served as a Short
type Prober interface {
	Probe(ctx context.Context, videoID string) ProbeResult
}

const (
	defaultProbeBaseURL = "https://www.youtube.com"
	probeTimeout        = 5 * time.Second
)

// httpProber implements Prober with an unauthenticated HEAD request against
// the shorts URL, never following redirects. Only the status code and the
// redirect target are inspected.
type httpProber struct {
	client  *http.Client
	baseURL string
}

// NewHTTPProber creates the production shorts prober
func NewHTTPProber() Prober {
	return &httpProber{
		client: &http.Client{
			Timeout: probeTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: defaultProbeBaseURL,
	}
}

// Probe issues a HEAD request to /shorts/<id>. A 200 confirms short-form, a
// redirect to the watch URL confirms long-form, and anything else (including
// a timed-out or failed request) is indeterminate.
func (p *httpProber) Probe(ctx context.Context, videoID string) ProbeResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.baseURL+"/shorts/"+videoID, nil)
	if err != nil {
		return ProbeIndeterminate
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return ProbeIndeterminate
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return ProbeShort
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		if strings.Contains(resp.Header.Get("Location"), "/watch") {
			return ProbeWatch
		}
	}
	return ProbeIndeterminate
}
