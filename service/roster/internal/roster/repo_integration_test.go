package roster

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"ArmyForge/service/roster/internal/rules"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Test d'integrazione: ciclo di vita completo di una sessione sul DB.
func TestRepoSessionLifecycle(t *testing.T) {
	dsn := os.Getenv("ROSTER_TEST_DSN")
	if dsn == "" {
		t.Skip("ROSTER_TEST_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := NewRepo(db)

	session := Session{
		ID:          uuid.New(),
		Faction:     "Iron Legion",
		PointsLimit: 300,
		Ruleset:     rules.RulesetCappedChampions,
		NextSeq:     1,
	}
	if err := repo.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	t.Cleanup(func() {
		_, _ = db.ExecContext(ctx, `DELETE FROM entries WHERE session_id = $1`, session.ID)
		_, _ = db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, session.ID)
	})

	if err := repo.InsertEntry(ctx, session.ID, rules.Entry{ID: 1, Name: "Warlord", Points: 120, Type: rules.TypeLeader}); err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}
	if err := repo.InsertEntry(ctx, session.ID, rules.Entry{ID: 2, Name: "Grunts", Points: 60, Type: rules.TypeCore}); err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}

	loaded, err := repo.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if loaded.NextSeq != 3 {
		t.Fatalf("expected next_seq 3 after two inserts, got %d", loaded.NextSeq)
	}

	entries, err := repo.ListEntries(ctx, session.ID)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != 1 || entries[1].Type != rules.TypeCore {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	removed, err := repo.DeleteEntry(ctx, session.ID, 1)
	if err != nil || !removed {
		t.Fatalf("DeleteEntry: removed=%v err=%v", removed, err)
	}
	removed, err = repo.DeleteEntry(ctx, session.ID, 1)
	if err != nil || removed {
		t.Fatalf("expected second delete to be a no-op, removed=%v err=%v", removed, err)
	}

	if err := repo.ClearEntries(ctx, session.ID); err != nil {
		t.Fatalf("ClearEntries: %v", err)
	}
	loaded, err = repo.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession after clear: %v", err)
	}
	if loaded.NextSeq != 1 {
		t.Fatalf("expected next_seq reset to 1, got %d", loaded.NextSeq)
	}
	entries, err = repo.ListEntries(ctx, session.ID)
	if err != nil {
		t.Fatalf("ListEntries after clear: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty roster after clear, got %+v", entries)
	}
}

// Test d'integrazione: sessione inesistente.
func TestRepoGetSessionNotFound(t *testing.T) {
	dsn := os.Getenv("ROSTER_TEST_DSN")
	if dsn == "" {
		t.Skip("ROSTER_TEST_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := NewRepo(db)
	_, err = repo.GetSession(context.Background(), uuid.New())
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
