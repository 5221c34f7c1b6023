package models

import "strconv"

// AgentRound is one flattened row per player per played map: which agent the
// player ran, their scoreboard line, and whether their team took the map.
type AgentRound struct {
	EventID      int    `json:"event_id"`
	EventName    string `json:"event_name"`
	Region       string `json:"region"`
	MatchID      int    `json:"match_id"`
	Map          string `json:"map"`
	Team         string `json:"team"`
	Player       string `json:"player"`
	Agent        string `json:"agent"` // empty when the roster entry carries no agent
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	ACS          int    `json:"acs"`
	FirstKills   int    `json:"fk"`
	FirstDeaths  int    `json:"fd"`
	RoundsPlayed int    `json:"rounds_played"`
	Result       int    `json:"result"` // 1 = player's team won the map
}

// MatchRow is one flattened row per team per played map; every map yields two
// symmetric rows, one from each team's perspective.
type MatchRow struct {
	EventID      int    `json:"event_id"`
	EventName    string `json:"event_name"`
	Region       string `json:"region"`
	MatchID      int    `json:"match_id"`
	Map          string `json:"map"`
	Team         string `json:"team"`
	Opponent     string `json:"opponent"`
	RoundsPlayed int    `json:"rounds_played"`
	Result       int    `json:"result"`
	StartTime    string `json:"start_time"` // always empty, not exposed by the series surface
}

// AgentRoundHeader returns the CSV column order for agent rows.
func AgentRoundHeader() []string {
	return []string{
		"event_id", "event_name", "region", "match_id", "map",
		"team", "player", "agent",
		"kills", "deaths", "assists", "acs", "fk", "fd",
		"rounds_played", "result",
	}
}

// Record renders the row in AgentRoundHeader order.
func (r AgentRound) Record() []string {
	return []string{
		strconv.Itoa(r.EventID), r.EventName, r.Region,
		strconv.Itoa(r.MatchID), r.Map,
		r.Team, r.Player, r.Agent,
		strconv.Itoa(r.Kills), strconv.Itoa(r.Deaths), strconv.Itoa(r.Assists),
		strconv.Itoa(r.ACS), strconv.Itoa(r.FirstKills), strconv.Itoa(r.FirstDeaths),
		strconv.Itoa(r.RoundsPlayed), strconv.Itoa(r.Result),
	}
}

// MatchRowHeader returns the CSV column order for match rows.
func MatchRowHeader() []string {
	return []string{
		"event_id", "event_name", "region", "match_id", "map",
		"team", "opponent", "rounds_played", "result", "start_time",
	}
}

// Record renders the row in MatchRowHeader order.
func (r MatchRow) Record() []string {
	return []string{
		strconv.Itoa(r.EventID), r.EventName, r.Region,
		strconv.Itoa(r.MatchID), r.Map,
		r.Team, r.Opponent,
		strconv.Itoa(r.RoundsPlayed), strconv.Itoa(r.Result), r.StartTime,
	}
}
