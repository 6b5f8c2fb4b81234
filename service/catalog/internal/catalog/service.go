package catalog

import (
	"context"
	"database/sql"
	"errors"
)

// Service applica la logica di dominio usando il repository.
// Qui si mappano errori del DB in errori di dominio.
type Service struct {
	repo FactionRepository
}

// NewService crea il servizio di dominio per il catalogo.
func NewService(repo FactionRepository) *Service {
	return &Service{repo: repo}
}

// ListFactions ritorna tutte le fazioni disponibili.
func (s *Service) ListFactions(ctx context.Context) ([]Faction, error) {
	return s.repo.ListFactions(ctx)
}

// GetFaction carica la fazione con le unità associate.
func (s *Service) GetFaction(ctx context.Context, name string) (*FactionDetail, error) {
	faction, err := s.repo.GetFactionByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrFactionNotFound) {
			return nil, ErrFactionNotFound
		}
		return nil, err
	}

	units, err := s.repo.ListUnitsByFaction(ctx, faction.Name)
	if err != nil {
		return nil, err
	}

	return &FactionDetail{
		Name:    faction.Name,
		Ruleset: faction.Ruleset,
		Units:   units,
	}, nil
}

// GetUnit risolve una definizione di unità dentro una fazione.
func (s *Service) GetUnit(ctx context.Context, faction, name string) (Unit, error) {
	unit, err := s.repo.GetUnitByName(ctx, faction, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrUnitNotFound) {
			return Unit{}, ErrUnitNotFound
		}
		return Unit{}, err
	}
	return unit, nil
}
