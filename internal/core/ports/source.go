package ports

import (
	"context"
	"errors"
	"fmt"
)

// ErrUpstream indicates the scoring service could not produce a decodable
// response (unreachable, non-2xx, or malformed JSON body).
var ErrUpstream = errors.New("upstream request failed")

// UpstreamError carries context for a failed fetch.
type UpstreamError struct {
	Song   string
	Artist string
	Cause  error
}

func (e *UpstreamError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("upstream request failed for song %q artist %q", e.Song, e.Artist)
	}
	return fmt.Sprintf("upstream request failed for song %q artist %q: %v", e.Song, e.Artist, e.Cause)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// ReportSource fetches the raw decoded analysis payload for a song.
// Implementations surface transport-class failures as errors and leave all
// schema judgment to the caller.
type ReportSource interface {
	Fetch(ctx context.Context, song, artist string) (any, error)
}
