// Package writer mirrors graded picks into Postgres for downstream
// analysis. The JSON results files stay the source of truth; a write
// failure here is logged by the caller and never fails the run.
package writer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mtlusa01/mattev-sports/pkg/models"
)

// HistoryWriter writes graded picks to the graded_picks table
type HistoryWriter struct {
	db *sql.DB
}

// NewHistoryWriter creates a new history writer
func NewHistoryWriter(db *sql.DB) *HistoryWriter {
	return &HistoryWriter{
		db: db,
	}
}

// WritePicks inserts one row per graded pick in a single transaction.
// Rows are deduplicated by the table's unique constraint on
// (sport_key, pick_date, bet_type, matchup, pick).
func (w *HistoryWriter) WritePicks(ctx context.Context, runID, sportKey string, picks []models.Pick) error {
	if len(picks) == 0 {
		return nil
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if commit doesn't happen

	query := `
		INSERT INTO graded_picks (
			run_id, sport_key, pick_date, bet_type, matchup,
			pick, result, hit, confidence, best_bet
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT DO NOTHING
	`

	for _, p := range picks {
		_, err = tx.ExecContext(
			ctx,
			query,
			runID,
			sportKey,
			p.Date,
			p.Type,
			p.Game,
			p.Pick,
			p.Result,
			p.Hit,
			p.Confidence,
			p.BestBet,
		)

		if err != nil {
			return fmt.Errorf("failed to insert pick %s %s: %w", p.Type, p.Game, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
