package models

import "time"

// GameStatus describes the lifecycle phase of a game.
type GameStatus string

// Game status values
const (
	StatusScheduled  GameStatus = "scheduled"
	StatusInProgress GameStatus = "in_progress"
	StatusCompleted  GameStatus = "completed"
	StatusOvertime   GameStatus = "overtime"
)

// Defaults applied to newly created games.
const (
	DefaultQuarterSeconds   = 600 // 10 minute quarters
	DefaultShotClockSeconds = 24
)

// PlayerStats holds the accumulated box-score line for a single player.
type PlayerStats struct {
	Points                 int `json:"points"`
	Rebounds               int `json:"rebounds"`
	Assists                int `json:"assists"`
	Steals                 int `json:"steals"`
	Blocks                 int `json:"blocks"`
	Fouls                  int `json:"fouls"`
	Turnovers              int `json:"turnovers"`
	FieldGoalsMade         int `json:"field_goals_made"`
	FieldGoalsAttempted    int `json:"field_goals_attempted"`
	ThreePointersMade      int `json:"three_pointers_made"`
	ThreePointersAttempted int `json:"three_pointers_attempted"`
	FreeThrowsMade         int `json:"free_throws_made"`
	FreeThrowsAttempted    int `json:"free_throws_attempted"`
}

// Player is a roster entry on one of the two teams.
type Player struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Number   string      `json:"number"`
	Position string      `json:"position,omitempty"`
	Stats    PlayerStats `json:"stats"`
}

// TeamState is one side of a game: roster, score and who is on the floor.
type TeamState struct {
	Name          string   `json:"name"`
	Score         int      `json:"score"`
	Players       []Player `json:"players"`
	ActivePlayers []string `json:"active_players"`
}

// ShotClock is the shot-clock portion of the game clock state.
type ShotClock struct {
	TimeRemaining int   `json:"time_remaining"`
	Running       bool  `json:"running"`
	LastReset     int64 `json:"last_reset"` // unix millis of last reset
}

// QuarterLine holds the per-quarter totals for both teams.
type QuarterLine struct {
	HomeScore     int `json:"home_score"`
	AwayScore     int `json:"away_score"`
	HomeRebounds  int `json:"home_rebounds"`
	AwayRebounds  int `json:"away_rebounds"`
	HomeTurnovers int `json:"home_turnovers"`
	AwayTurnovers int `json:"away_turnovers"`
}

// Game is the versioned document being synchronized. Version is assigned by
// whichever writer last flushed the document to the remote store and only
// ever increases; it is the primary input for conflict resolution, ahead of
// wall-clock timestamps.
type Game struct {
	Date          time.Time     `json:"date"`
	LastModified  time.Time     `json:"last_modified"`
	DeletedAt     time.Time     `json:"deleted_at,omitzero"`
	ID            string        `json:"id"`
	OwnerID       string        `json:"owner_id"`
	Status        GameStatus    `json:"status"`
	HomeTeam      TeamState     `json:"home_team"`
	AwayTeam      TeamState     `json:"away_team"`
	QuarterStats  []QuarterLine `json:"quarter_stats"`
	ShotClock     ShotClock     `json:"shot_clock"`
	Version       int64         `json:"version"`
	Quarter       int           `json:"quarter"`
	TimeRemaining int           `json:"time_remaining"`
	Deleted       bool          `json:"deleted"`
}

// NewGame returns a scheduled game with the standard clock defaults and
// version 1. The caller supplies the id so offline creation can use a
// synthetic one.
func NewGame(id, ownerID string, date time.Time, home, away TeamState, now time.Time) *Game {
	return &Game{
		ID:            id,
		OwnerID:       ownerID,
		Date:          date,
		Status:        StatusScheduled,
		HomeTeam:      home,
		AwayTeam:      away,
		Quarter:       1,
		TimeRemaining: DefaultQuarterSeconds,
		ShotClock: ShotClock{
			TimeRemaining: DefaultShotClockSeconds,
			LastReset:     now.UnixMilli(),
		},
		QuarterStats: []QuarterLine{{}},
		Version:      1,
		LastModified: now,
	}
}

// Clone returns a deep copy of the game. Cached games are updated
// copy-on-write so readers never observe a half-applied mutation.
func (g *Game) Clone() *Game {
	clone := *g
	clone.HomeTeam = g.HomeTeam.clone()
	clone.AwayTeam = g.AwayTeam.clone()
	if g.QuarterStats != nil {
		clone.QuarterStats = make([]QuarterLine, len(g.QuarterStats))
		copy(clone.QuarterStats, g.QuarterStats)
	}
	return &clone
}

func (ts TeamState) clone() TeamState {
	clone := ts
	if ts.Players != nil {
		clone.Players = make([]Player, len(ts.Players))
		copy(clone.Players, ts.Players)
	}
	if ts.ActivePlayers != nil {
		clone.ActivePlayers = make([]string, len(ts.ActivePlayers))
		copy(clone.ActivePlayers, ts.ActivePlayers)
	}
	return clone
}
