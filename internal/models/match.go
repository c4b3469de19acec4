package models

import "strconv"

// Match statuses as reported by the football-data.org v4 API.
const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusInPlay    = "IN_PLAY"
	StatusPaused    = "PAUSED"
	StatusFinished  = "FINISHED"
)

// Default team names used when the API omits them.
const (
	DefaultHomeName = "Local"
	DefaultAwayName = "Visitante"
)

// Match represents one match snapshot from the football-data.org v4 API
type Match struct {
	ID       int64  `json:"id"`
	Status   string `json:"status"`
	HomeTeam Team   `json:"homeTeam"`
	AwayTeam Team   `json:"awayTeam"`
	Score    Score  `json:"score"`
}

// Team holds the subset of team fields the service cares about
type Team struct {
	Name string `json:"name"`
}

// Score holds the nested score blocks of a match. Fields are pointers
// because the API omits scores before kickoff.
type Score struct {
	FullTime ScorePair `json:"fullTime"`
	HalfTime ScorePair `json:"halfTime"`
}

// ScorePair is one (home, away) goal pair
type ScorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Key returns the stable string identifier used to reference the match
// from bets and event keys.
func (m *Match) Key() string {
	return strconv.FormatInt(m.ID, 10)
}

// HomeName returns the home team name, defaulting when absent
func (m *Match) HomeName() string {
	if m.HomeTeam.Name == "" {
		return DefaultHomeName
	}
	return m.HomeTeam.Name
}

// AwayName returns the away team name, defaulting when absent
func (m *Match) AwayName() string {
	if m.AwayTeam.Name == "" {
		return DefaultAwayName
	}
	return m.AwayTeam.Name
}

// HomeScore resolves the current home goals: full-time first, then
// half-time, then 0 when both are absent.
func (m *Match) HomeScore() int {
	if m.Score.FullTime.Home != nil {
		return *m.Score.FullTime.Home
	}
	if m.Score.HalfTime.Home != nil {
		return *m.Score.HalfTime.Home
	}
	return 0
}

// AwayScore resolves the current away goals, same fallback as HomeScore
func (m *Match) AwayScore() int {
	if m.Score.FullTime.Away != nil {
		return *m.Score.FullTime.Away
	}
	if m.Score.HalfTime.Away != nil {
		return *m.Score.HalfTime.Away
	}
	return 0
}

// IsLive reports whether the match is currently being played
func (m *Match) IsLive() bool {
	return m.Status == StatusLive || m.Status == StatusInPlay
}

// IsInProgress reports whether the match has kicked off and not yet
// finished; includes half-time pauses.
func (m *Match) IsInProgress() bool {
	return m.IsLive() || m.Status == StatusPaused
}

// IsFinished reports whether the match has ended
func (m *Match) IsFinished() bool {
	return m.Status == StatusFinished
}
