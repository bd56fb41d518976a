package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByDuration(t *testing.T) {
	tests := []struct {
		name      string
		seconds   int
		wantProbe bool
		wantShort bool
	}{
		{name: "below cutoff needs probe", seconds: 59, wantProbe: true},
		{name: "just under cutoff needs probe", seconds: 179, wantProbe: true},
		{name: "at cutoff is long-form final", seconds: 180, wantProbe: false},
		{name: "above cutoff is long-form final", seconds: 3600, wantProbe: false},
		{name: "unknown duration still probed", seconds: 0, wantProbe: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifyByDuration(tt.seconds)
			assert.Equal(t, tt.wantProbe, c.needsProbe())
			assert.Equal(t, tt.wantShort, c.isShort())
		})
	}
}

func TestClassification_ProbeOutcomes(t *testing.T) {
	pending := classifyByDuration(60)

	assert.True(t, pending.applyProbe(ProbeShort).isShort())
	assert.False(t, pending.applyProbe(ProbeWatch).isShort())

	// Indeterminate defers to the heuristic
	indeterminate := pending.applyProbe(ProbeIndeterminate)
	assert.False(t, indeterminate.isShort())
	assert.True(t, indeterminate.applyHeuristic("My video #Shorts", "").isShort())
	assert.True(t, indeterminate.applyHeuristic("My video", "watch this #shorts clip").isShort())
	assert.False(t, indeterminate.applyHeuristic("My video", "no marker here").isShort())
}

func TestClassification_CutoffIsIrreversible(t *testing.T) {
	long := classifyByDuration(240)

	// Neither a probe nor the heuristic may flip a finalized long-form video
	assert.False(t, long.applyProbe(ProbeShort).isShort())
	assert.False(t, long.applyProbe(ProbeShort).applyHeuristic("#shorts", "#shorts").isShort())
}

func TestClassification_HeuristicCannotOverrideProbe(t *testing.T) {
	confirmed := classifyByDuration(60).applyProbe(ProbeWatch)

	assert.False(t, confirmed.applyHeuristic("#shorts", "#shorts").isShort())
}
