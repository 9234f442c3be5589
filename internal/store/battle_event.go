package store

import (
	"context"
	"fmt"
	"sort"
)

func (r *eventRepo) AppendBattleAnswer(ctx context.Context, data BattleAnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BattleAnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLanguage(data.Language).
		SetRound(data.Round).
		SetCorrectComplexity(data.CorrectComplexity).
		SetSelectedComplexity(data.SelectedComplexity).
		SetCorrect(data.Correct).
		SetTimedOut(data.TimedOut).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save battle answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) BattleStatsByLanguage(ctx context.Context) ([]BattleStats, error) {
	events, err := r.client.BattleAnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query battle answers: %w", err)
	}

	byLang := make(map[string]*BattleStats)
	for _, e := range events {
		st, ok := byLang[e.Language]
		if !ok {
			st = &BattleStats{Language: e.Language}
			byLang[e.Language] = st
		}
		st.Answers++
		if e.Correct {
			st.Correct++
		}
		if e.TimedOut {
			st.Timeouts++
		}
	}

	stats := make([]BattleStats, 0, len(byLang))
	for _, st := range byLang {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Language < stats[j].Language })
	return stats, nil
}
