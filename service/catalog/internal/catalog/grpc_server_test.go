package catalog

import (
	"context"
	"errors"
	"testing"

	catalogv1 "ArmyForge/proto/catalog/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeFactionReader simula il layer dominio per testare il handler gRPC.
type fakeFactionReader struct {
	factions []Faction
	detail   *FactionDetail
	unit     Unit
	err      error
}

func (f *fakeFactionReader) ListFactions(_ context.Context) ([]Faction, error) {
	return f.factions, f.err
}

func (f *fakeFactionReader) GetFaction(_ context.Context, _ string) (*FactionDetail, error) {
	return f.detail, f.err
}

func (f *fakeFactionReader) GetUnit(_ context.Context, _, _ string) (Unit, error) {
	return f.unit, f.err
}

// Verifica mapping OK e conversione a risposta gRPC.
func TestGetFactionOK(t *testing.T) {
	reader := &fakeFactionReader{
		detail: &FactionDetail{
			Name:    "Iron Legion",
			Ruleset: "capped-champions",
			Units: []Unit{
				{Name: "Warlord", Points: 120, Type: "LEADER"},
				{Name: "Grunts", Points: 60, Type: "CORE"},
			},
		},
	}
	server := NewGRPCServer(reader)

	resp, err := server.GetFaction(context.Background(), &catalogv1.GetFactionRequest{Name: "Iron Legion"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Ruleset != "capped-champions" {
		t.Fatalf("expected ruleset capped-champions, got %s", resp.Ruleset)
	}
	if len(resp.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(resp.Units))
	}
	if resp.Units[0].UnitType != "LEADER" {
		t.Fatalf("expected first unit LEADER, got %s", resp.Units[0].UnitType)
	}
}

// Verifica errore quando manca il nome.
func TestGetFactionMissingName(t *testing.T) {
	server := NewGRPCServer(&fakeFactionReader{})

	_, err := server.GetFaction(context.Background(), &catalogv1.GetFactionRequest{Name: "  "})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

// Verifica NotFound quando il dominio ritorna ErrFactionNotFound.
func TestGetFactionNotFound(t *testing.T) {
	server := NewGRPCServer(&fakeFactionReader{err: ErrFactionNotFound})

	_, err := server.GetFaction(context.Background(), &catalogv1.GetFactionRequest{Name: "Nessuno"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

// Verifica Internal su errori generici.
func TestGetFactionInternal(t *testing.T) {
	server := NewGRPCServer(&fakeFactionReader{err: errors.New("db down")})

	_, err := server.GetFaction(context.Background(), &catalogv1.GetFactionRequest{Name: "Iron Legion"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func TestGetUnitOK(t *testing.T) {
	reader := &fakeFactionReader{unit: Unit{Name: "Snipers", Points: 80, Type: "SPECIAL"}}
	server := NewGRPCServer(reader)

	resp, err := server.GetUnit(context.Background(), &catalogv1.GetUnitRequest{Faction: "Iron Legion", Name: "Snipers"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Unit.Points != 80 || resp.Unit.UnitType != "SPECIAL" {
		t.Fatalf("unexpected unit: %+v", resp.Unit)
	}
}

func TestGetUnitNotFound(t *testing.T) {
	server := NewGRPCServer(&fakeFactionReader{err: ErrUnitNotFound})

	_, err := server.GetUnit(context.Background(), &catalogv1.GetUnitRequest{Faction: "Iron Legion", Name: "Nessuno"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestListFactionsOK(t *testing.T) {
	reader := &fakeFactionReader{factions: []Faction{
		{Name: "Free Blades", Ruleset: "weighted-core"},
		{Name: "Iron Legion", Ruleset: "capped-champions"},
	}}
	server := NewGRPCServer(reader)

	resp, err := server.ListFactions(context.Background(), &catalogv1.ListFactionsRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Factions) != 2 {
		t.Fatalf("expected 2 factions, got %d", len(resp.Factions))
	}
}
