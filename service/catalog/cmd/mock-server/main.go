package main

import (
	"context"
	"log/slog"
	"net"
	"os"

	catalogv1 "ArmyForge/proto/catalog/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type mockCatalogServer struct {
	catalogv1.UnimplementedCatalogServiceServer
	logger *slog.Logger
}

// Catalogo statico per simulare il catalog-svc in locale.
var mockFactions = map[string]*catalogv1.GetFactionResponse{
	"Iron Legion": {
		Name:    "Iron Legion",
		Ruleset: "capped-champions",
		Units: []*catalogv1.Unit{
			{Name: "Warlord", Points: 120, UnitType: "LEADER"},
			{Name: "Grunts", Points: 60, UnitType: "CORE"},
			{Name: "Snipers", Points: 80, UnitType: "SPECIAL"},
			{Name: "Berserkers", Points: 95, UnitType: "CHAMPION"},
		},
	},
	"Free Blades": {
		Name:    "Free Blades",
		Ruleset: "weighted-core",
		Units: []*catalogv1.Unit{
			{Name: "Captain", Points: 90, UnitType: "LEADER"},
			{Name: "Sellswords", Points: 45, UnitType: "CORE"},
			{Name: "Scouts", Points: 55, UnitType: "SPECIAL"},
			{Name: "Veterans", Points: 110, UnitType: "ELITE"},
		},
	},
}

// ListFactions ritorna le fazioni del catalogo statico.
func (s *mockCatalogServer) ListFactions(_ context.Context, _ *catalogv1.ListFactionsRequest) (*catalogv1.ListFactionsResponse, error) {
	s.logger.Info("mock list factions")
	factions := make([]*catalogv1.FactionSummary, 0, len(mockFactions))
	for _, faction := range mockFactions {
		factions = append(factions, &catalogv1.FactionSummary{Name: faction.Name, Ruleset: faction.Ruleset})
	}
	return &catalogv1.ListFactionsResponse{Factions: factions}, nil
}

// GetFaction risolve una fazione dal catalogo statico.
func (s *mockCatalogServer) GetFaction(_ context.Context, req *catalogv1.GetFactionRequest) (*catalogv1.GetFactionResponse, error) {
	s.logger.Info("mock get faction", "name", req.Name)
	faction, ok := mockFactions[req.Name]
	if !ok {
		return nil, status.Error(codes.NotFound, "faction not found")
	}
	return faction, nil
}

// GetUnit cerca l'unità dentro la fazione statica.
func (s *mockCatalogServer) GetUnit(_ context.Context, req *catalogv1.GetUnitRequest) (*catalogv1.GetUnitResponse, error) {
	s.logger.Info("mock get unit", "faction", req.Faction, "name", req.Name)
	faction, ok := mockFactions[req.Faction]
	if !ok {
		return nil, status.Error(codes.NotFound, "faction not found")
	}
	for _, unit := range faction.Units {
		if unit.Name == req.Name {
			return &catalogv1.GetUnitResponse{Unit: unit}, nil
		}
	}
	return nil, status.Error(codes.NotFound, "unit not found")
}

func main() {
	// Avvio server gRPC mock su GRPC_ADDR (default :50052).
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	addr := os.Getenv("GRPC_ADDR")
	if addr == "" {
		// Default porta mock compatibile con catalog-svc.
		addr = ":50052"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("grpc listen failed", "error", err)
		os.Exit(1)
	}

	server := grpc.NewServer()
	catalogv1.RegisterCatalogServiceServer(server, &mockCatalogServer{logger: logger})

	logger.Info("mock catalog grpc listening", "addr", addr)
	if err := server.Serve(lis); err != nil {
		logger.Error("grpc serve failed", "error", err)
		os.Exit(1)
	}
}
