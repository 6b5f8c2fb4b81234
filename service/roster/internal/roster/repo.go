package roster

import (
	"context"
	"database/sql"
	"log/slog"

	"ArmyForge/service/roster/internal/rules"
	"github.com/google/uuid"
)

type Repo struct {
	db *sql.DB
}

// Session mappa la tabella sessions per insert/letture.
// NextSeq è il contatore monotono degli ID entry: non torna mai
// indietro se non con un clear esplicito del roster.
type Session struct {
	ID          uuid.UUID
	Faction     string
	PointsLimit int64
	Ruleset     string
	NextSeq     int64
}

// NewRepo collega il repository a una connessione SQL.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// CreateSession inserisce una nuova sessione di roster.
func (r *Repo) CreateSession(ctx context.Context, session Session) error {
	const query = `
INSERT INTO sessions (id, faction, points_limit, ruleset, next_seq, created_at)
VALUES ($1, $2, $3, $4, $5, now())`

	_, err := r.db.ExecContext(ctx, query, session.ID, session.Faction, session.PointsLimit, session.Ruleset, session.NextSeq)
	if err != nil {
		slog.Error("errore insert sessione", "error", err, "session_id", session.ID)
	}
	return err
}

// GetSession carica una sessione per ID.
func (r *Repo) GetSession(ctx context.Context, id uuid.UUID) (Session, error) {
	const query = `
SELECT id, faction, points_limit, ruleset, next_seq
FROM sessions
WHERE id = $1`

	var session Session
	err := r.db.QueryRowContext(ctx, query, id).Scan(&session.ID, &session.Faction, &session.PointsLimit, &session.Ruleset, &session.NextSeq)
	if err == sql.ErrNoRows {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		slog.Error("errore lettura sessione", "error", err, "session_id", id)
		return Session{}, err
	}
	return session, nil
}

// ListEntries ritorna le entry della sessione in ordine di inserimento.
func (r *Repo) ListEntries(ctx context.Context, sessionID uuid.UUID) ([]rules.Entry, error) {
	const query = `
SELECT seq, name, points, unit_type
FROM entries
WHERE session_id = $1
ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		slog.Error("errore query entry", "error", err, "session_id", sessionID)
		return nil, err
	}
	defer rows.Close()

	var entries []rules.Entry
	for rows.Next() {
		var entry rules.Entry
		var unitType string
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Points, &unitType); err != nil {
			return nil, err
		}
		entry.Type = rules.UnitType(unitType)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// InsertEntry inserisce la entry e avanza next_seq nella stessa transazione.
func (r *Repo) InsertEntry(ctx context.Context, sessionID uuid.UUID, entry rules.Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	const insertEntry = `
INSERT INTO entries (session_id, seq, name, points, unit_type, created_at)
VALUES ($1, $2, $3, $4, $5, now())`

	if _, err := tx.ExecContext(ctx, insertEntry, sessionID, entry.ID, entry.Name, entry.Points, string(entry.Type)); err != nil {
		_ = tx.Rollback()
		slog.Error("errore insert entry", "error", err, "session_id", sessionID, "entry_id", entry.ID)
		return err
	}

	const bumpSeq = `
UPDATE sessions
SET next_seq = $2
WHERE id = $1`

	if _, err := tx.ExecContext(ctx, bumpSeq, sessionID, entry.ID+1); err != nil {
		_ = tx.Rollback()
		slog.Error("errore avanzamento next_seq", "error", err, "session_id", sessionID)
		return err
	}

	return tx.Commit()
}

// DeleteEntry rimuove una entry; ritorna false se l'ID non esiste.
func (r *Repo) DeleteEntry(ctx context.Context, sessionID uuid.UUID, entryID int64) (bool, error) {
	const query = `
DELETE FROM entries
WHERE session_id = $1 AND seq = $2`

	result, err := r.db.ExecContext(ctx, query, sessionID, entryID)
	if err != nil {
		slog.Error("errore delete entry", "error", err, "session_id", sessionID, "entry_id", entryID)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ClearEntries svuota il roster e riporta next_seq al valore iniziale.
func (r *Repo) ClearEntries(ctx context.Context, sessionID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE session_id = $1`, sessionID); err != nil {
		_ = tx.Rollback()
		slog.Error("errore clear entry", "error", err, "session_id", sessionID)
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE sessions SET next_seq = 1 WHERE id = $1`, sessionID); err != nil {
		_ = tx.Rollback()
		slog.Error("errore reset next_seq", "error", err, "session_id", sessionID)
		return err
	}

	return tx.Commit()
}

// UpdatePointsLimit cambia il limite senza toccare le entry presenti.
func (r *Repo) UpdatePointsLimit(ctx context.Context, sessionID uuid.UUID, limit int64) error {
	const query = `
UPDATE sessions
SET points_limit = $2
WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, sessionID, limit)
	if err != nil {
		slog.Error("errore update limite", "error", err, "session_id", sessionID)
	}
	return err
}

// UpdateFactionAndClear cambia fazione e ruleset svuotando il roster:
// una sessione resta sempre omogenea a una sola fazione.
func (r *Repo) UpdateFactionAndClear(ctx context.Context, sessionID uuid.UUID, faction, ruleset string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	const updateSession = `
UPDATE sessions
SET faction = $2, ruleset = $3, next_seq = 1
WHERE id = $1`

	if _, err := tx.ExecContext(ctx, updateSession, sessionID, faction, ruleset); err != nil {
		_ = tx.Rollback()
		slog.Error("errore cambio fazione", "error", err, "session_id", sessionID)
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE session_id = $1`, sessionID); err != nil {
		_ = tx.Rollback()
		slog.Error("errore clear entry su cambio fazione", "error", err, "session_id", sessionID)
		return err
	}

	return tx.Commit()
}
