package vlr

import (
	"fmt"
	"strings"
	"time"
)

// Tier is the competitive level an event belongs to.
type Tier string

const (
	TierVCT        Tier = "vct"
	TierChallenger Tier = "challenger"
	TierGameChange Tier = "game-changers"
)

// Status filters event listings by lifecycle state.
type Status string

const (
	StatusAll       Status = "all"
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

const dateLayout = "2006-01-02"

// Date is a nullable calendar date. The listing endpoint serializes dates as
// "YYYY-MM-DD" and omits or nulls them for events without a published schedule.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// Event is one tournament as returned by the listing endpoint.
type Event struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Region    string `json:"region"`
	Status    string `json:"status"`
	StartDate *Date  `json:"start_date"`
	EndDate   *Date  `json:"end_date"`
}

// Match is one best-of-N series within an event.
type Match struct {
	MatchID int    `json:"match_id"`
	EventID int    `json:"event_id"`
	Phase   string `json:"phase,omitempty"`
}

// Team is one side of a played map.
type Team struct {
	Name     string `json:"name"`
	Score    *int   `json:"score"` // null when the map was forfeited or unreported
	IsWinner bool   `json:"is_winner"`
	Short    string `json:"short"`
}

// PlayerStats is one scoreboard line on a played map.
type PlayerStats struct {
	Name        string   `json:"name"`
	TeamShort   string   `json:"team_short"`
	Agents      []string `json:"agents"`
	Kills       int      `json:"k"`
	Deaths      int      `json:"d"`
	Assists     int      `json:"a"`
	ACS         int      `json:"acs"`
	FirstKills  int      `json:"fk"`
	FirstDeaths int      `json:"fd"`
}

// MapStats is the full result of one map inside a series: the team pair and
// every player's line.
type MapStats struct {
	MapName string        `json:"map_name"`
	Teams   []Team        `json:"teams"`
	Players []PlayerStats `json:"players"`
}
