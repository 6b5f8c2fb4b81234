package rules

import "testing"

// Costruisce entry con ID sequenziali come farebbe una sessione.
func buildEntries(types ...UnitType) []Entry {
	entries := make([]Entry, 0, len(types))
	for i, unitType := range types {
		entries = append(entries, Entry{
			ID:     int64(i + 1),
			Name:   "unit",
			Points: 10,
			Type:   unitType,
		})
	}
	return entries
}

func TestTotalPointsSumsPresentEntries(t *testing.T) {
	entries := []Entry{
		{ID: 1, Points: 5, Type: TypeLeader},
		{ID: 2, Points: 10, Type: TypeCore},
		{ID: 3, Points: 8, Type: TypeSpecial},
	}
	if got := TotalPoints(entries); got != 23 {
		t.Fatalf("expected total 23, got %d", got)
	}

	// Rimozione in mezzo: il totale segue le entry presenti.
	entries = append(entries[:1], entries[2:]...)
	if got := TotalPoints(entries); got != 13 {
		t.Fatalf("expected total 13 after removal, got %d", got)
	}
}

func TestTotalPointsEmptyRoster(t *testing.T) {
	if got := TotalPoints(nil); got != 0 {
		t.Fatalf("expected total 0 for empty roster, got %d", got)
	}
}

// Ruleset capped-champions: limit 300, Leader+Core+Special da 23 punti.
func TestComposeCappedChampionsExample(t *testing.T) {
	entries := []Entry{
		{ID: 1, Name: "Warlord", Points: 5, Type: TypeLeader},
		{ID: 2, Name: "Grunts", Points: 10, Type: TypeCore},
		{ID: 3, Name: "Snipers", Points: 8, Type: TypeSpecial},
	}
	comp := Compose(entries, CappedChampions(), 300)

	if comp.Leaders != 1 || comp.Core != 1 || comp.Special != 1 {
		t.Fatalf("unexpected counts: %+v", comp)
	}
	if comp.RequiredCore != 1 {
		t.Fatalf("expected required core 1, got %d", comp.RequiredCore)
	}
	if comp.ChampionCap != 1 {
		t.Fatalf("expected champion cap floor(300/250)=1, got %d", comp.ChampionCap)
	}
	if problems := Problems(comp); len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
}

// Ruleset weighted-core: 1 Leader, 1 Elite, 0 Core a limite 200.
func TestComposeWeightedCoreExample(t *testing.T) {
	entries := buildEntries(TypeLeader, TypeElite)
	comp := Compose(entries, WeightedCore(), 200)

	if comp.RequiredCore != 2 {
		t.Fatalf("expected required core 0+2*1=2, got %d", comp.RequiredCore)
	}
	if comp.ChampionCap != -1 {
		t.Fatalf("expected no champion cap, got %d", comp.ChampionCap)
	}

	problems := Problems(comp)
	if len(problems) != 1 {
		t.Fatalf("expected one problem, got %v", problems)
	}
	if problems[0] != "Core: need at least 2 (you have 0)." {
		t.Fatalf("unexpected problem message: %q", problems[0])
	}
}

// Un secondo Leader è sempre una violazione, a prescindere dai punti.
func TestProblemsSecondLeader(t *testing.T) {
	entries := buildEntries(TypeLeader, TypeLeader)
	comp := Compose(entries, CappedChampions(), 1000)

	problems := Problems(comp)
	if len(problems) != 1 {
		t.Fatalf("expected one problem, got %v", problems)
	}
	if problems[0] != "Leaders: need exactly 1 (you have 2)." {
		t.Fatalf("unexpected problem message: %q", problems[0])
	}
}

func TestProblemsChampionOverCap(t *testing.T) {
	entries := buildEntries(TypeLeader, TypeChampion, TypeChampion)
	comp := Compose(entries, CappedChampions(), 300)

	problems := Problems(comp)
	if len(problems) != 1 {
		t.Fatalf("expected one problem, got %v", problems)
	}
	if problems[0] != "Champions: max 1 for this limit (you have 2)." {
		t.Fatalf("unexpected problem message: %q", problems[0])
	}
}

// Tipi sconosciuti esclusi da tutti i conteggi, senza errori.
func TestComposeIgnoresUnknownTypes(t *testing.T) {
	entries := []Entry{
		{ID: 1, Points: 5, Type: TypeLeader},
		{ID: 2, Points: 99, Type: UnitType("ARTILLERY")},
	}
	comp := Compose(entries, CappedChampions(), 300)

	counted := comp.Leaders + comp.Core + comp.Special + comp.ChampionsOrElite
	if counted != 1 {
		t.Fatalf("expected unknown type to be ignored, counted %d", counted)
	}
}

// I conteggi per tipo sommano sempre alla dimensione del roster (tipi noti).
func TestComposeCountsSumToRosterSize(t *testing.T) {
	entries := buildEntries(TypeLeader, TypeCore, TypeCore, TypeSpecial, TypeChampion)
	comp := Compose(entries, CappedChampions(), 500)

	sum := comp.Leaders + comp.Core + comp.Special + comp.ChampionsOrElite
	if sum != len(entries) {
		t.Fatalf("expected counts to sum to %d, got %d", len(entries), sum)
	}
}

func TestCapAllowsAtCap(t *testing.T) {
	ruleset := CappedChampions()
	comp := Compose(buildEntries(TypeChampion), ruleset, 300)

	if CapAllows(comp, TypeChampion, ruleset) {
		t.Fatalf("expected cap 1 to reject a second champion")
	}
	if !CapAllows(comp, TypeCore, ruleset) {
		t.Fatalf("expected non-capped type to be allowed")
	}
}

// Edge: cap 0 deve restare rappresentabile e rifiutare il primo add.
func TestCapAllowsZeroCap(t *testing.T) {
	ruleset := CappedChampions()
	comp := Compose(nil, ruleset, 200)

	if comp.ChampionCap != 0 {
		t.Fatalf("expected champion cap 0 at limit 200, got %d", comp.ChampionCap)
	}
	if CapAllows(comp, TypeChampion, ruleset) {
		t.Fatalf("expected cap 0 to reject the first champion")
	}
}

func TestCapAllowsUncappedRuleset(t *testing.T) {
	ruleset := WeightedCore()
	comp := Compose(buildEntries(TypeElite, TypeElite, TypeElite), ruleset, 200)

	if !CapAllows(comp, TypeElite, ruleset) {
		t.Fatalf("expected weighted-core variant to have no cap")
	}
}

func TestSortDisplayTypeRankThenID(t *testing.T) {
	entries := []Entry{
		{ID: 1, Type: TypeChampion},
		{ID: 2, Type: TypeCore},
		{ID: 3, Type: TypeLeader},
		{ID: 4, Type: TypeCore},
		{ID: 5, Type: TypeSpecial},
	}
	SortDisplay(entries)

	got := make([]int64, 0, len(entries))
	for _, entry := range entries {
		got = append(got, entry.ID)
	}
	want := []int64{3, 2, 4, 5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected display order: %v", got)
		}
	}
}

func TestByNameKnownAndUnknown(t *testing.T) {
	if _, ok := ByName(RulesetWeightedCore); !ok {
		t.Fatalf("expected weighted-core to resolve")
	}
	if _, ok := ByName("house-rules"); ok {
		t.Fatalf("expected unknown ruleset to fail")
	}
}
