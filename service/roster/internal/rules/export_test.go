package rules

import (
	"strings"
	"testing"
)

func TestExportTextIncludesEveryEntryOnce(t *testing.T) {
	entries := []Entry{
		{ID: 1, Name: "Berserkers", Points: 40, Type: TypeChampion},
		{ID: 2, Name: "Warlord", Points: 120, Type: TypeLeader},
		{ID: 3, Name: "Grunts", Points: 60, Type: TypeCore},
	}
	text := ExportText("Iron Legion", 300, entries, CappedChampions())

	for _, name := range []string{"Berserkers", "Warlord", "Grunts"} {
		if strings.Count(text, name) != 1 {
			t.Fatalf("expected %q exactly once in export:\n%s", name, text)
		}
	}
}

// L'export lista le entry in ordine di tipo e poi di inserimento.
func TestExportTextDisplayOrder(t *testing.T) {
	entries := []Entry{
		{ID: 1, Name: "Berserkers", Points: 40, Type: TypeChampion},
		{ID: 2, Name: "Warlord", Points: 120, Type: TypeLeader},
		{ID: 3, Name: "Grunts", Points: 60, Type: TypeCore},
	}
	text := ExportText("Iron Legion", 300, entries, CappedChampions())

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), text)
	}
	if lines[3] != "1. [LEADER] Warlord (120 pts)" {
		t.Fatalf("unexpected first entry line: %q", lines[3])
	}
	if lines[4] != "2. [CORE] Grunts (60 pts)" {
		t.Fatalf("unexpected second entry line: %q", lines[4])
	}
	if lines[5] != "3. [CHAMPION] Berserkers (40 pts)" {
		t.Fatalf("unexpected third entry line: %q", lines[5])
	}
}

func TestExportTextHeader(t *testing.T) {
	entries := []Entry{{ID: 1, Name: "Warlord", Points: 120, Type: TypeLeader}}
	text := ExportText("Iron Legion", 300, entries, CappedChampions())

	lines := strings.Split(text, "\n")
	if lines[0] != "Roster: Iron Legion (limit 300 pts)" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "Total: 120 pts" {
		t.Fatalf("unexpected total line: %q", lines[1])
	}
	if lines[2] != "Leaders 1/1, Core 0/0, Special 0, Champions 0/1" {
		t.Fatalf("unexpected composition line: %q", lines[2])
	}
}

// L'export non muta l'ordine della slice passata dal chiamante.
func TestExportTextDoesNotMutateInput(t *testing.T) {
	entries := []Entry{
		{ID: 1, Name: "Berserkers", Points: 40, Type: TypeChampion},
		{ID: 2, Name: "Warlord", Points: 120, Type: TypeLeader},
	}
	_ = ExportText("Iron Legion", 300, entries, CappedChampions())

	if entries[0].ID != 1 || entries[1].ID != 2 {
		t.Fatalf("expected input slice untouched, got %+v", entries)
	}
}

func TestExportTextEliteLine(t *testing.T) {
	entries := []Entry{
		{ID: 1, Name: "Warlord", Points: 50, Type: TypeLeader},
		{ID: 2, Name: "Veterans", Points: 80, Type: TypeElite},
	}
	text := ExportText("Free Blades", 200, entries, WeightedCore())

	lines := strings.Split(text, "\n")
	if lines[2] != "Leaders 1/1, Core 0/2, Special 0, Elite 1" {
		t.Fatalf("unexpected composition line: %q", lines[2])
	}
}
