package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ArmyForge/service/roster/internal/roster"
	"ArmyForge/service/roster/internal/rules"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 1) Carica env per connessione DB.
	envPath := os.Getenv("GO_DOTENV_PATH")
	if envPath == "" {
		envPath = "service/roster/.env"
	}
	if err := godotenv.Overload(envPath); err != nil {
		logger.Warn("impossibile caricare .env", "path", envPath, "error", err)
	}

	// 2) Legge la DSN e apre la connessione.
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

	// 3) Risolve session_id (da env o dalla prima sessione nel DB).
	sessionID, err := loadSessionID(db)
	if err != nil {
		logger.Error("session id non disponibile", "error", err)
		os.Exit(1)
	}

	// 4) Carica la sessione, rivaluta le regole e stampa l'export.
	repo := roster.NewRepo(db)

	session, err := repo.GetSession(context.Background(), sessionID)
	if err != nil {
		if errors.Is(err, roster.ErrSessionNotFound) {
			logger.Error("sessione non trovata", "session_id", sessionID)
			os.Exit(1)
		}
		logger.Error("errore lettura sessione", "error", err)
		os.Exit(1)
	}

	entries, err := repo.ListEntries(context.Background(), sessionID)
	if err != nil {
		logger.Error("errore lettura entry", "error", err)
		os.Exit(1)
	}

	ruleset, ok := rules.ByName(session.Ruleset)
	if !ok {
		logger.Error("ruleset sconosciuto", "ruleset", session.Ruleset)
		os.Exit(1)
	}

	total := rules.TotalPoints(entries)
	comp := rules.Compose(entries, ruleset, session.PointsLimit)
	severity, message := rules.Classify(total, session.PointsLimit, rules.Problems(comp))

	fmt.Printf("session_id=%s faction=%s limit=%d entries=%d\n", session.ID, session.Faction, session.PointsLimit, len(entries))
	fmt.Printf("status=%s message=%q\n", severity, message)
	fmt.Println(rules.ExportText(session.Faction, session.PointsLimit, entries, ruleset))
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

// loadSessionID usa SESSION_ID se presente, altrimenti prende la prima sessione.
func loadSessionID(db *sql.DB) (uuid.UUID, error) {
	sessionIDStr := os.Getenv("SESSION_ID")
	if sessionIDStr != "" {
		return uuid.Parse(sessionIDStr)
	}

	const query = `
SELECT id
FROM sessions
ORDER BY created_at ASC
LIMIT 1`

	var sessionID uuid.UUID
	if err := db.QueryRow(query).Scan(&sessionID); err != nil {
		return uuid.Nil, err
	}
	return sessionID, nil
}
