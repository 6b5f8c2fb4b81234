package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"
)

// Formato del file YAML di catalogo.
type seedFile struct {
	Factions []seedFaction `yaml:"factions"`
}

type seedFaction struct {
	Name    string     `yaml:"name"`
	Ruleset string     `yaml:"ruleset"`
	Units   []seedUnit `yaml:"units"`
}

type seedUnit struct {
	Name   string `yaml:"name"`
	Points int64  `yaml:"points"`
	Type   string `yaml:"type"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 1) Carica env per connessione DB.
	envPath := os.Getenv("GO_DOTENV_PATH")
	if envPath == "" {
		envPath = "service/catalog/.env"
	}
	if err := godotenv.Overload(envPath); err != nil {
		logger.Warn("impossibile caricare .env", "path", envPath, "error", err)
	}

	// 2) Legge il file YAML passato da CLI.
	if len(os.Args) < 2 {
		logger.Error("nessun file yaml passato", "usage", "go run service/catalog/cmd/seed/main.go <factions.yaml>")
		os.Exit(1)
	}
	path := os.Args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("lettura file fallita", "path", path, "error", err)
		os.Exit(1)
	}

	var seed seedFile
	if err := yaml.Unmarshal(content, &seed); err != nil {
		logger.Error("parse yaml fallito", "path", path, "error", err)
		os.Exit(1)
	}
	if err := validateSeed(seed); err != nil {
		logger.Error("file yaml non valido", "path", path, "error", err)
		os.Exit(1)
	}

	// 3) Apre il DB e importa in transazione.
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		logger.Error("DB_DSN mancante")
		os.Exit(1)
	}

	db, err := openDB(dsn)
	if err != nil {
		logger.Error("db connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	for _, faction := range seed.Factions {
		if err := importFaction(db, faction); err != nil {
			logger.Error("import fazione fallito", "faction", faction.Name, "error", err)
			os.Exit(1)
		}
		logger.Info("fazione importata", "faction", faction.Name, "units", len(faction.Units))
	}
}

// validateSeed applica le invarianti di base del catalogo.
func validateSeed(seed seedFile) error {
	if len(seed.Factions) == 0 {
		return errors.New("factions list is empty")
	}
	for _, faction := range seed.Factions {
		if faction.Name == "" {
			return errors.New("faction name is required")
		}
		if faction.Ruleset == "" {
			return errors.New("faction ruleset is required")
		}
		seen := map[string]bool{}
		for _, unit := range faction.Units {
			if unit.Name == "" {
				return errors.New("unit name is required")
			}
			if seen[unit.Name] {
				return errors.New("duplicate unit name: " + unit.Name)
			}
			seen[unit.Name] = true
			if unit.Points <= 0 {
				return errors.New("unit points must be positive: " + unit.Name)
			}
		}
	}
	return nil
}

// importFaction riscrive fazione e unità in una singola transazione.
// Reimportare lo stesso file è idempotente.
func importFaction(db *sql.DB, faction seedFaction) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	const upsertFaction = `
INSERT INTO factions (name, ruleset)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET ruleset = EXCLUDED.ruleset`

	if _, err := tx.ExecContext(ctx, upsertFaction, faction.Name, faction.Ruleset); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM units WHERE faction_name = $1`, faction.Name); err != nil {
		_ = tx.Rollback()
		return err
	}

	const insertUnit = `
INSERT INTO units (faction_name, name, points, unit_type, position)
VALUES ($1, $2, $3, $4, $5)`

	for position, unit := range faction.Units {
		if _, err := tx.ExecContext(ctx, insertUnit, faction.Name, unit.Name, unit.Points, unit.Type, position); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}
