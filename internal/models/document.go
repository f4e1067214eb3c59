package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/courtside/statsync/pkg/api"
)

// gamePayload is the domain portion of a game document, everything the sync
// envelope does not carry itself.
type gamePayload struct {
	Date          time.Time     `json:"date"`
	Status        GameStatus    `json:"status"`
	HomeTeam      TeamState     `json:"home_team"`
	AwayTeam      TeamState     `json:"away_team"`
	QuarterStats  []QuarterLine `json:"quarter_stats"`
	ShotClock     ShotClock     `json:"shot_clock"`
	Quarter       int           `json:"quarter"`
	TimeRemaining int           `json:"time_remaining"`
}

// Document converts the game into its wire envelope.
func (g *Game) Document() (api.Document, error) {
	payload, err := json.Marshal(gamePayload{
		Date:          g.Date,
		Status:        g.Status,
		HomeTeam:      g.HomeTeam,
		AwayTeam:      g.AwayTeam,
		QuarterStats:  g.QuarterStats,
		ShotClock:     g.ShotClock,
		Quarter:       g.Quarter,
		TimeRemaining: g.TimeRemaining,
	})
	if err != nil {
		return api.Document{}, fmt.Errorf("failed to marshal game payload: %w", err)
	}

	return api.Document{
		ID:           g.ID,
		OwnerID:      g.OwnerID,
		Payload:      payload,
		Version:      g.Version,
		LastModified: g.LastModified,
		Deleted:      g.Deleted,
		DeletedAt:    g.DeletedAt,
	}, nil
}

// GameFromDocument converts a wire envelope back into a game.
func GameFromDocument(doc api.Document) (*Game, error) {
	var payload gamePayload
	if len(doc.Payload) > 0 {
		if err := json.Unmarshal(doc.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game payload: %w", err)
		}
	}

	return &Game{
		ID:            doc.ID,
		OwnerID:       doc.OwnerID,
		Date:          payload.Date,
		Status:        payload.Status,
		HomeTeam:      payload.HomeTeam,
		AwayTeam:      payload.AwayTeam,
		QuarterStats:  payload.QuarterStats,
		ShotClock:     payload.ShotClock,
		Quarter:       payload.Quarter,
		TimeRemaining: payload.TimeRemaining,
		Version:       doc.Version,
		LastModified:  doc.LastModified,
		Deleted:       doc.Deleted,
		DeletedAt:     doc.DeletedAt,
	}, nil
}
