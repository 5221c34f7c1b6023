package logic

import (
	"context"

	"github.com/vlrstats/vct-collector/internal/vlr"
)

// MockSeriesSource
type MockSeriesSource struct {
	EventMatchesFunc func(ctx context.Context, eventID int) ([]vlr.Match, error)
	SeriesMapsFunc   func(ctx context.Context, matchID int) ([]vlr.MapStats, error)
}

func (m *MockSeriesSource) EventMatches(ctx context.Context, eventID int) ([]vlr.Match, error) {
	if m.EventMatchesFunc != nil {
		return m.EventMatchesFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *MockSeriesSource) SeriesMaps(ctx context.Context, matchID int) ([]vlr.MapStats, error) {
	if m.SeriesMapsFunc != nil {
		return m.SeriesMapsFunc(ctx, matchID)
	}
	return nil, nil
}
