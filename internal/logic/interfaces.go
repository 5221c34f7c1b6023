package logic

import (
	"context"

	"github.com/vlrstats/vct-collector/internal/vlr"
)

// SeriesSource is the slice of the statistics API the flattener walks.
type SeriesSource interface {
	EventMatches(ctx context.Context, eventID int) ([]vlr.Match, error)
	SeriesMaps(ctx context.Context, matchID int) ([]vlr.MapStats, error)
}
