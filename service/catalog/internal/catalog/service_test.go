package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

// fakeRepo simula il repository per testare la logica di dominio.
type fakeRepo struct {
	factions   []Faction
	faction    Faction
	units      []Unit
	unit       Unit
	listErr    error
	factionErr error
	unitsErr   error
	unitErr    error
}

func (f *fakeRepo) ListFactions(_ context.Context) ([]Faction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.factions, nil
}

func (f *fakeRepo) GetFactionByName(_ context.Context, _ string) (Faction, error) {
	if f.factionErr != nil {
		return Faction{}, f.factionErr
	}
	return f.faction, nil
}

func (f *fakeRepo) ListUnitsByFaction(_ context.Context, _ string) ([]Unit, error) {
	if f.unitsErr != nil {
		return nil, f.unitsErr
	}
	return f.units, nil
}

func (f *fakeRepo) GetUnitByName(_ context.Context, _, _ string) (Unit, error) {
	if f.unitErr != nil {
		return Unit{}, f.unitErr
	}
	return f.unit, nil
}

// Caso: fazione esistente con unità.
func TestServiceGetFactionOK(t *testing.T) {
	repo := &fakeRepo{
		faction: Faction{Name: "Iron Legion", Ruleset: "capped-champions"},
		units: []Unit{
			{Name: "Warlord", Points: 120, Type: "LEADER"},
			{Name: "Grunts", Points: 60, Type: "CORE"},
		},
	}
	service := NewService(repo)

	detail, err := service.GetFaction(context.Background(), "Iron Legion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Ruleset != "capped-champions" {
		t.Fatalf("expected ruleset capped-champions, got %s", detail.Ruleset)
	}
	if len(detail.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(detail.Units))
	}
}

// Caso: fazione inesistente.
func TestServiceGetFactionNotFound(t *testing.T) {
	repo := &fakeRepo{factionErr: sql.ErrNoRows}
	service := NewService(repo)

	_, err := service.GetFaction(context.Background(), "Nessuno")
	if !errors.Is(err, ErrFactionNotFound) {
		t.Fatalf("expected ErrFactionNotFound, got %v", err)
	}
}

// Caso: errore generico dal repository.
func TestServiceGetFactionDBError(t *testing.T) {
	repo := &fakeRepo{factionErr: errors.New("db down")}
	service := NewService(repo)

	_, err := service.GetFaction(context.Background(), "Iron Legion")
	if err == nil || errors.Is(err, ErrFactionNotFound) {
		t.Fatalf("expected generic error, got %v", err)
	}
}

func TestServiceGetUnitOK(t *testing.T) {
	repo := &fakeRepo{unit: Unit{Name: "Snipers", Points: 80, Type: "SPECIAL"}}
	service := NewService(repo)

	unit, err := service.GetUnit(context.Background(), "Iron Legion", "Snipers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unit.Points != 80 || unit.Type != "SPECIAL" {
		t.Fatalf("unexpected unit: %+v", unit)
	}
}

func TestServiceGetUnitNotFound(t *testing.T) {
	repo := &fakeRepo{unitErr: sql.ErrNoRows}
	service := NewService(repo)

	_, err := service.GetUnit(context.Background(), "Iron Legion", "Nessuno")
	if !errors.Is(err, ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
}

func TestServiceListFactions(t *testing.T) {
	repo := &fakeRepo{factions: []Faction{
		{Name: "Free Blades", Ruleset: "weighted-core"},
		{Name: "Iron Legion", Ruleset: "capped-champions"},
	}}
	service := NewService(repo)

	factions, err := service.ListFactions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(factions) != 2 {
		t.Fatalf("expected 2 factions, got %d", len(factions))
	}
}
