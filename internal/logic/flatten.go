// Package logic holds the collector's decision-making: which events belong to
// a season and how per-map series statistics flatten into tabular rows.
package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vlrstats/vct-collector/internal/models"
	"github.com/vlrstats/vct-collector/internal/vlr"
)

// FlattenEvents walks events -> matches -> maps -> players in source order and
// emits both flat row sets. Maps without exactly two teams are skipped for
// both row kinds. Any API error aborts the walk and propagates.
func FlattenEvents(ctx context.Context, src SeriesSource, events []vlr.Event, logger *zap.SugaredLogger) ([]models.AgentRound, []models.MatchRow, error) {
	var agentRows []models.AgentRound
	var matchRows []models.MatchRow

	for _, ev := range events {
		matches, err := src.EventMatches(ctx, ev.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch matches for event %d: %w", ev.ID, err)
		}
		logger.Infow("Fetched event matches",
			"eventId", ev.ID,
			"event", ev.Name,
			"matches", len(matches),
		)

		for _, m := range matches {
			maps, err := src.SeriesMaps(ctx, m.MatchID)
			if err != nil {
				return nil, nil, fmt.Errorf("fetch maps for series %d: %w", m.MatchID, err)
			}

			for _, mp := range maps {
				if len(mp.Teams) != 2 {
					logger.Warnw("Skipping map without exactly two teams",
						"matchId", m.MatchID,
						"map", mp.MapName,
						"teams", len(mp.Teams),
					)
					continue
				}
				t1, t2 := mp.Teams[0], mp.Teams[1]
				rounds := scoreOrZero(t1.Score) + scoreOrZero(t2.Score)

				for _, pair := range [2][2]vlr.Team{{t1, t2}, {t2, t1}} {
					team, opp := pair[0], pair[1]
					matchRows = append(matchRows, models.MatchRow{
						EventID:      ev.ID,
						EventName:    ev.Name,
						Region:       ev.Region,
						MatchID:      m.MatchID,
						Map:          mp.MapName,
						Team:         team.Name,
						Opponent:     opp.Name,
						RoundsPlayed: rounds,
						Result:       boolToResult(team.IsWinner),
					})
				}

				for _, p := range mp.Players {
					won := (t1.IsWinner && p.TeamShort == t1.Short) ||
						(t2.IsWinner && p.TeamShort == t2.Short)
					agentRows = append(agentRows, models.AgentRound{
						EventID:      ev.ID,
						EventName:    ev.Name,
						Region:       ev.Region,
						MatchID:      m.MatchID,
						Map:          mp.MapName,
						Team:         p.TeamShort,
						Player:       p.Name,
						Agent:        firstAgent(p.Agents),
						Kills:        p.Kills,
						Deaths:       p.Deaths,
						Assists:      p.Assists,
						ACS:          p.ACS,
						FirstKills:   p.FirstKills,
						FirstDeaths:  p.FirstDeaths,
						RoundsPlayed: rounds,
						Result:       boolToResult(won),
					})
				}
			}
		}
	}

	return agentRows, matchRows, nil
}

func scoreOrZero(s *int) int {
	if s == nil {
		return 0
	}
	return *s
}

func firstAgent(agents []string) string {
	if len(agents) == 0 {
		return ""
	}
	return agents[0]
}

func boolToResult(won bool) int {
	if won {
		return 1
	}
	return 0
}
