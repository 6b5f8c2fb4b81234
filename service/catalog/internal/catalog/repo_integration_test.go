package catalog

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// Test d'integrazione: inserisce dati reali e li rilegge dal DB.
func TestRepoGetFactionAndUnits(t *testing.T) {
	dsn := os.Getenv("CATALOG_TEST_DSN")
	if dsn == "" {
		t.Skip("CATALOG_TEST_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := NewRepo(db)

	const factionName = "Test Legion"

	if _, err := db.ExecContext(ctx, `INSERT INTO factions (name, ruleset) VALUES ($1,$2)`, factionName, "capped-champions"); err != nil {
		t.Fatalf("insert faction: %v", err)
	}
	t.Cleanup(func() {
		_, _ = db.ExecContext(ctx, `DELETE FROM units WHERE faction_name = $1`, factionName)
		_, _ = db.ExecContext(ctx, `DELETE FROM factions WHERE name = $1`, factionName)
	})

	if _, err := db.ExecContext(ctx, `INSERT INTO units (faction_name, name, points, unit_type, position) VALUES ($1,$2,$3,$4,$5)`, factionName, "Warlord", 120, "LEADER", 0); err != nil {
		t.Fatalf("insert unit: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO units (faction_name, name, points, unit_type, position) VALUES ($1,$2,$3,$4,$5)`, factionName, "Grunts", 60, "CORE", 1); err != nil {
		t.Fatalf("insert unit: %v", err)
	}

	faction, err := repo.GetFactionByName(ctx, factionName)
	if err != nil {
		t.Fatalf("GetFactionByName: %v", err)
	}
	if faction.Ruleset != "capped-champions" {
		t.Fatalf("unexpected faction data: %+v", faction)
	}

	units, err := repo.ListUnitsByFaction(ctx, factionName)
	if err != nil {
		t.Fatalf("ListUnitsByFaction: %v", err)
	}
	if len(units) != 2 || units[0].Name != "Warlord" || units[1].Name != "Grunts" {
		t.Fatalf("unexpected units: %+v", units)
	}

	unit, err := repo.GetUnitByName(ctx, factionName, "Grunts")
	if err != nil {
		t.Fatalf("GetUnitByName: %v", err)
	}
	if unit.Points != 60 || unit.Type != "CORE" {
		t.Fatalf("unexpected unit: %+v", unit)
	}
}

// Test d'integrazione: fazione inesistente.
func TestRepoGetFactionNotFound(t *testing.T) {
	dsn := os.Getenv("CATALOG_TEST_DSN")
	if dsn == "" {
		t.Skip("CATALOG_TEST_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := NewRepo(db)
	_, err = repo.GetFactionByName(context.Background(), "Fazione Inesistente")
	if !errors.Is(err, ErrFactionNotFound) {
		t.Fatalf("expected ErrFactionNotFound, got %v", err)
	}
}
