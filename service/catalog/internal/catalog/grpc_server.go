package catalog

import (
	"context"
	"errors"
	"strings"

	catalogv1 "ArmyForge/proto/catalog/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCServer espone il handler gRPC per il catalog-svc.
// Qui si valida l'input e si mappano gli errori in codici gRPC.
type GRPCServer struct {
	catalogv1.UnimplementedCatalogServiceServer
	reader FactionReader
}

// NewGRPCServer crea il server gRPC con il dominio.
func NewGRPCServer(reader FactionReader) *GRPCServer {
	return &GRPCServer{reader: reader}
}

// ListFactions ritorna il sommario di tutte le fazioni.
func (s *GRPCServer) ListFactions(ctx context.Context, req *catalogv1.ListFactionsRequest) (*catalogv1.ListFactionsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	factions, err := s.reader.ListFactions(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list factions")
	}

	summaries := make([]*catalogv1.FactionSummary, 0, len(factions))
	for _, faction := range factions {
		summaries = append(summaries, &catalogv1.FactionSummary{
			Name:    faction.Name,
			Ruleset: faction.Ruleset,
		})
	}
	return &catalogv1.ListFactionsResponse{Factions: summaries}, nil
}

// GetFaction ritorna la fazione con le unità in ordine di catalogo.
func (s *GRPCServer) GetFaction(ctx context.Context, req *catalogv1.GetFactionRequest) (*catalogv1.GetFactionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	detail, err := s.reader.GetFaction(ctx, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrFactionNotFound):
			return nil, status.Error(codes.NotFound, "faction not found")
		default:
			return nil, status.Error(codes.Internal, "failed to load faction")
		}
	}

	units := make([]*catalogv1.Unit, 0, len(detail.Units))
	for _, unit := range detail.Units {
		units = append(units, &catalogv1.Unit{
			Name:     unit.Name,
			Points:   unit.Points,
			UnitType: unit.Type,
		})
	}

	return &catalogv1.GetFactionResponse{
		Name:    detail.Name,
		Ruleset: detail.Ruleset,
		Units:   units,
	}, nil
}

// GetUnit ritorna una singola definizione di unità.
func (s *GRPCServer) GetUnit(ctx context.Context, req *catalogv1.GetUnitRequest) (*catalogv1.GetUnitResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.Faction) == "" {
		return nil, status.Error(codes.InvalidArgument, "faction is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	unit, err := s.reader.GetUnit(ctx, req.Faction, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnitNotFound):
			return nil, status.Error(codes.NotFound, "unit not found")
		default:
			return nil, status.Error(codes.Internal, "failed to load unit")
		}
	}

	return &catalogv1.GetUnitResponse{
		Unit: &catalogv1.Unit{
			Name:     unit.Name,
			Points:   unit.Points,
			UnitType: unit.Type,
		},
	}, nil
}
