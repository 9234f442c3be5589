package store

import (
	"context"
	"fmt"

	"github.com/abhisek/dojo/ent"
	"github.com/abhisek/dojo/ent/debateturnevent"
)

func (r *eventRepo) AppendDebateTurn(ctx context.Context, data DebateTurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DebateTurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetRole(data.Role).
		SetPhase(data.Phase).
		SetContent(data.Content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save debate turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) DebateTurns(ctx context.Context, sessionID string) ([]DebateTurnRecord, error) {
	events, err := r.client.DebateTurnEvent.Query().
		Where(debateturnevent.SessionID(sessionID)).
		Order(ent.Asc(debateturnevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query debate turns: %w", err)
	}

	records := make([]DebateTurnRecord, len(events))
	for i, e := range events {
		records[i] = DebateTurnRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionID: e.SessionID,
			Role:      e.Role,
			Phase:     e.Phase,
			Content:   e.Content,
		}
	}
	return records, nil
}

// DebateStats summarizes debate activity across all sessions.
func (r *eventRepo) DebateStats(ctx context.Context) (DebateStatsData, error) {
	events, err := r.client.DebateTurnEvent.Query().All(ctx)
	if err != nil {
		return DebateStatsData{}, fmt.Errorf("query debate turns: %w", err)
	}

	stats := DebateStatsData{Turns: len(events)}
	sessions := make(map[string]struct{})
	for _, e := range events {
		sessions[e.SessionID] = struct{}{}
	}
	stats.Sessions = len(sessions)
	return stats, nil
}
