package catalog

import (
	"context"
	"database/sql"
	"log/slog"
)

// Accesso dati del catalogo su Postgres (persistence layer).
// Qui restano le query SQL e la traduzione in tipi di dominio.

// FactionRepository espone le letture necessarie al dominio.
type FactionRepository interface {
	ListFactions(ctx context.Context) ([]Faction, error)
	GetFactionByName(ctx context.Context, name string) (Faction, error)
	ListUnitsByFaction(ctx context.Context, faction string) ([]Unit, error)
	GetUnitByName(ctx context.Context, faction, name string) (Unit, error)
}

// Repo implementa l'accesso al DB per il catalogo.
type Repo struct {
	db *sql.DB
}

// NewRepo collega il repository a una connessione SQL.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ListFactions ritorna le fazioni in ordine alfabetico.
func (r *Repo) ListFactions(ctx context.Context) ([]Faction, error) {
	const query = `
SELECT name, ruleset
FROM factions
ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Error("errore query fazioni", "error", err)
		return nil, err
	}
	defer rows.Close()

	var factions []Faction
	for rows.Next() {
		var faction Faction
		if err := rows.Scan(&faction.Name, &faction.Ruleset); err != nil {
			return nil, err
		}
		factions = append(factions, faction)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return factions, nil
}

// GetFactionByName carica una singola fazione.
func (r *Repo) GetFactionByName(ctx context.Context, name string) (Faction, error) {
	const query = `
SELECT name, ruleset
FROM factions
WHERE name = $1`

	var faction Faction
	err := r.db.QueryRowContext(ctx, query, name).Scan(&faction.Name, &faction.Ruleset)
	if err == sql.ErrNoRows {
		return Faction{}, ErrFactionNotFound
	}
	if err != nil {
		slog.Error("errore lettura fazione", "error", err, "faction", name)
		return Faction{}, err
	}
	return faction, nil
}

// ListUnitsByFaction ritorna le unità nell'ordine del catalogo.
func (r *Repo) ListUnitsByFaction(ctx context.Context, faction string) ([]Unit, error) {
	const query = `
SELECT name, points, unit_type
FROM units
WHERE faction_name = $1
ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query, faction)
	if err != nil {
		slog.Error("errore query unità", "error", err, "faction", faction)
		return nil, err
	}
	defer rows.Close()

	var units []Unit
	for rows.Next() {
		var unit Unit
		if err := rows.Scan(&unit.Name, &unit.Points, &unit.Type); err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return units, nil
}

// GetUnitByName carica una definizione di unità per fazione e nome.
func (r *Repo) GetUnitByName(ctx context.Context, faction, name string) (Unit, error) {
	const query = `
SELECT name, points, unit_type
FROM units
WHERE faction_name = $1 AND name = $2`

	var unit Unit
	err := r.db.QueryRowContext(ctx, query, faction, name).Scan(&unit.Name, &unit.Points, &unit.Type)
	if err == sql.ErrNoRows {
		return Unit{}, ErrUnitNotFound
	}
	if err != nil {
		slog.Error("errore lettura unità", "error", err, "faction", faction, "unit", name)
		return Unit{}, err
	}
	return unit, nil
}
