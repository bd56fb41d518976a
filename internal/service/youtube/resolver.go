package youtube

import (
	"context"
	"regexp"
	"strings"

	"github.com/spoonlabs/yt-report/internal/errors"
)

// RefKind is the lookup strategy a channel reference maps to
type RefKind int

const (
	// RefHandle looks the channel up by its @handle
	RefHandle RefKind = iota
	// RefLegacyUser looks the channel up by its legacy username
	RefLegacyUser
	// RefChannelID looks the channel up by its explicit UC... ID
	RefChannelID
)

// ChannelRef is a classified channel reference: exactly one lookup strategy
// plus the value to look up
type ChannelRef struct {
	Kind  RefKind
	Value string
}

// channelIDPattern is the fixed shape of a YouTube channel ID: the UC prefix
// followed by 22 characters of the ID alphabet
var channelIDPattern = regexp.MustCompile(`^UC[0-9A-Za-z_-]{22}$`)

// ClassifyReference normalizes free-form channel input (handle, legacy
// username, explicit ID, or URL fragment) into exactly one lookup strategy.
// Priority: @handle sigil > user/ segment > channel/ segment > raw ID shape >
// bare handle with the sigil assumed omitted.
func ClassifyReference(raw string) (ChannelRef, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ChannelRef{}, errors.New(errors.CodeInvalidArg, "channel reference is required")
	}

	if strings.HasPrefix(trimmed, "@") {
		return ChannelRef{Kind: RefHandle, Value: strings.TrimPrefix(trimmed, "@")}, nil
	}
	if idx := strings.Index(trimmed, "user/"); idx >= 0 {
		return ChannelRef{Kind: RefLegacyUser, Value: pathSegment(trimmed[idx+len("user/"):])}, nil
	}
	if idx := strings.Index(trimmed, "channel/"); idx >= 0 {
		return ChannelRef{Kind: RefChannelID, Value: pathSegment(trimmed[idx+len("channel/"):])}, nil
	}
	if channelIDPattern.MatchString(trimmed) {
		return ChannelRef{Kind: RefChannelID, Value: trimmed}, nil
	}

	// Assume the user typed a handle without the sigil
	return ChannelRef{Kind: RefHandle, Value: trimmed}, nil
}

// pathSegment cuts the value at the next path or query delimiter
func pathSegment(s string) string {
	if idx := strings.IndexAny(s, "/?&#"); idx >= 0 {
		return s[:idx]
	}
	return s
}

// Resolve normalizes a free-form channel reference and looks it up against
// the catalog, returning the canonical channel ID. Explicit IDs still go
// through one lookup call so that a nonexistent channel surfaces as NotFound.
func (s *service) Resolve(ctx context.Context, reference string) (string, error) {
	ref, err := ClassifyReference(reference)
	if err != nil {
		return "", err
	}

	channelID, err := s.catalog.LookupChannelID(ctx, ref)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeExternal, "channel lookup failed")
	}
	if channelID == "" {
		return "", errors.New(errors.CodeNotFound, "no channel matches "+strings.TrimSpace(reference))
	}

	return channelID, nil
}
