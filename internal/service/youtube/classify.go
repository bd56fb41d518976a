package youtube

import "strings"

// shortFormCutoffSeconds is the duration at or above which a video can never
// be classified short-form, regardless of probe or heuristic outcome
const shortFormCutoffSeconds = 180

// shortsHashtag is the textual marker creators attach to short-form uploads
const shortsHashtag = "#shorts"

// classState is one tagged state of the per-video classification machine:
//
//	duration known -> {long-form final | pending probe}
//	pending probe  -> {short confirmed | long confirmed | pending heuristic}
//	pending heuristic -> {short confirmed | long confirmed}
//
// Transitions never re-enter an earlier state, which is what enforces the
// precedence duration cutoff > live probe > hashtag heuristic.
type classState int

const (
	// stateLongFormFinal: at or above the cutoff; irreversible, never probed
	stateLongFormFinal classState = iota
	// statePendingProbe: below the cutoff (or unknown duration), awaiting probe
	statePendingProbe
	// stateShortFormConfirmed is terminal
	stateShortFormConfirmed
	// stateLongFormConfirmed is terminal
	stateLongFormConfirmed
	// statePendingHeuristic: probe was indeterminate, awaiting hashtag check
	statePendingHeuristic
)

type classification struct {
	state classState
}

// classifyByDuration decides the initial state. Unknown durations (parsed to
// 0) are below the cutoff and therefore still get probed.
func classifyByDuration(durationSeconds int) classification {
	if durationSeconds >= shortFormCutoffSeconds {
		return classification{state: stateLongFormFinal}
	}
	return classification{state: statePendingProbe}
}

// needsProbe reports whether the video must be live-verified
func (c classification) needsProbe() bool {
	return c.state == statePendingProbe
}

// applyProbe advances a pending classification with the probe outcome.
// States other than pending-probe are left untouched, so a finalized
// long-form video cannot be flipped by a stray probe result.
func (c classification) applyProbe(result ProbeResult) classification {
	if c.state != statePendingProbe {
		return c
	}
	switch result {
	case ProbeShort:
		return classification{state: stateShortFormConfirmed}
	case ProbeWatch:
		return classification{state: stateLongFormConfirmed}
	default:
		return classification{state: statePendingHeuristic}
	}
}

// applyHeuristic settles an indeterminate probe with the hashtag marker.
// It only ever acts on the pending-heuristic state, so it cannot override
// a duration cutoff or a confirmed probe.
func (c classification) applyHeuristic(title, description string) classification {
	if c.state != statePendingHeuristic {
		return c
	}
	if hasShortsHashtag(title) || hasShortsHashtag(description) {
		return classification{state: stateShortFormConfirmed}
	}
	return classification{state: stateLongFormConfirmed}
}

// isShort reports the final classification; only meaningful once the state
// machine has been driven to a terminal or final state
func (c classification) isShort() bool {
	return c.state == stateShortFormConfirmed
}

func hasShortsHashtag(text string) bool {
	return strings.Contains(strings.ToLower(text), shortsHashtag)
}
