package roster

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	catalogv1 "ArmyForge/proto/catalog/v1"
	rosterv1 "ArmyForge/proto/roster/v1"
	"ArmyForge/pkg/grpcx"
	"ArmyForge/service/roster/internal/rules"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Test suite per i flussi di sessione: add/remove/clear e validazione.

// fakeRepo simula la persistenza con stato in memoria.
type fakeRepo struct {
	session     Session
	sessionErr  error
	entries     []rules.Entry
	createErr   error
	insertErr   error
	insertCalls int
	listErr     error
}

func (r *fakeRepo) CreateSession(_ context.Context, session Session) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.session = session
	return nil
}

func (r *fakeRepo) GetSession(_ context.Context, _ uuid.UUID) (Session, error) {
	if r.sessionErr != nil {
		return Session{}, r.sessionErr
	}
	return r.session, nil
}

func (r *fakeRepo) ListEntries(_ context.Context, _ uuid.UUID) ([]rules.Entry, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	entries := make([]rules.Entry, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}

func (r *fakeRepo) InsertEntry(_ context.Context, _ uuid.UUID, entry rules.Entry) error {
	r.insertCalls++
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, entry)
	r.session.NextSeq = entry.ID + 1
	return nil
}

func (r *fakeRepo) DeleteEntry(_ context.Context, _ uuid.UUID, entryID int64) (bool, error) {
	for i, entry := range r.entries {
		if entry.ID == entryID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) ClearEntries(_ context.Context, _ uuid.UUID) error {
	r.entries = nil
	r.session.NextSeq = 1
	return nil
}

func (r *fakeRepo) UpdatePointsLimit(_ context.Context, _ uuid.UUID, limit int64) error {
	r.session.PointsLimit = limit
	return nil
}

func (r *fakeRepo) UpdateFactionAndClear(_ context.Context, _ uuid.UUID, faction, ruleset string) error {
	r.session.Faction = faction
	r.session.Ruleset = ruleset
	r.session.NextSeq = 1
	r.entries = nil
	return nil
}

// fakeCatalog simula il client gRPC del catalog-svc.
type fakeCatalog struct {
	factions map[string]*catalogv1.GetFactionResponse
	units    map[string]*catalogv1.Unit
	err      error
}

func (c *fakeCatalog) ListFactions(_ context.Context, _ *catalogv1.ListFactionsRequest, _ ...grpc.CallOption) (*catalogv1.ListFactionsResponse, error) {
	return &catalogv1.ListFactionsResponse{}, nil
}

func (c *fakeCatalog) GetFaction(_ context.Context, req *catalogv1.GetFactionRequest, _ ...grpc.CallOption) (*catalogv1.GetFactionResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	faction, ok := c.factions[req.Name]
	if !ok {
		return nil, status.Error(codes.NotFound, "faction not found")
	}
	return faction, nil
}

func (c *fakeCatalog) GetUnit(_ context.Context, req *catalogv1.GetUnitRequest, _ ...grpc.CallOption) (*catalogv1.GetUnitResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	unit, ok := c.units[req.Faction+"|"+req.Name]
	if !ok {
		return nil, status.Error(codes.NotFound, "unit not found")
	}
	return &catalogv1.GetUnitResponse{Unit: unit}, nil
}

// fakeLock simula un lock Redis sempre disponibile.
type fakeLock struct {
	token string
	ok    bool
	err   error
}

func (l *fakeLock) Acquire(_ context.Context, _ string) (string, bool, error) {
	return l.token, l.ok, l.err
}

func (l *fakeLock) Release(_ context.Context, _, _ string) error {
	return nil
}

func openLock() *fakeLock {
	return &fakeLock{token: "token", ok: true}
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		factions: map[string]*catalogv1.GetFactionResponse{
			"Iron Legion": {Name: "Iron Legion", Ruleset: "capped-champions"},
			"Free Blades": {Name: "Free Blades", Ruleset: "weighted-core"},
		},
		units: map[string]*catalogv1.Unit{
			"Iron Legion|Warlord":    {Name: "Warlord", Points: 5, UnitType: "LEADER"},
			"Iron Legion|Grunts":     {Name: "Grunts", Points: 10, UnitType: "CORE"},
			"Iron Legion|Snipers":    {Name: "Snipers", Points: 8, UnitType: "SPECIAL"},
			"Iron Legion|Berserkers": {Name: "Berserkers", Points: 95, UnitType: "CHAMPION"},
		},
	}
}

func testSession(ruleset string, limit int64) Session {
	return Session{
		ID:          uuid.New(),
		Faction:     "Iron Legion",
		PointsLimit: limit,
		Ruleset:     ruleset,
		NextSeq:     1,
	}
}

func TestCreateSessionSuccess(t *testing.T) {
	repo := &fakeRepo{}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	resp, err := server.CreateSession(context.Background(), &rosterv1.CreateSessionRequest{
		Faction:     "Free Blades",
		PointsLimit: 200,
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if resp.SessionId == "" {
		t.Fatalf("expected session_id to be set")
	}
	// Ruleset non specificato: vale l'hint della fazione.
	if repo.session.Ruleset != rules.RulesetWeightedCore {
		t.Fatalf("expected weighted-core from faction hint, got %s", repo.session.Ruleset)
	}
	if repo.session.NextSeq != 1 {
		t.Fatalf("expected next_seq 1, got %d", repo.session.NextSeq)
	}
}

func TestCreateSessionUnknownFaction(t *testing.T) {
	server := NewServer(slog.Default(), &fakeRepo{}, testCatalog(), openLock())

	_, err := server.CreateSession(context.Background(), &rosterv1.CreateSessionRequest{
		Faction:     "Nessuno",
		PointsLimit: 300,
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestCreateSessionInvalidLimit(t *testing.T) {
	server := NewServer(slog.Default(), &fakeRepo{}, testCatalog(), openLock())

	_, err := server.CreateSession(context.Background(), &rosterv1.CreateSessionRequest{
		Faction:     "Iron Legion",
		PointsLimit: 0,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

// Ruleset capped-champions: Leader(5)+Core(10) già nel roster,
// l'add di Special(8) porta il totale a 23 su limite 300.
func TestAddEntrySuccess(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	session.NextSeq = 3
	repo := &fakeRepo{
		session: session,
		entries: []rules.Entry{
			{ID: 1, Name: "Warlord", Points: 5, Type: rules.TypeLeader},
			{ID: 2, Name: "Grunts", Points: 10, Type: rules.TypeCore},
		},
	}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	resp, err := server.AddEntry(context.Background(), &rosterv1.AddEntryRequest{
		SessionId: session.ID.String(),
		UnitName:  "Snipers",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !resp.Created {
		t.Fatalf("expected created=true, warning: %q", resp.Warning)
	}
	if resp.Entry.Id != 3 {
		t.Fatalf("expected entry id 3 from next_seq, got %d", resp.Entry.Id)
	}
	if resp.Validation.TotalPoints != 23 {
		t.Fatalf("expected total 23, got %d", resp.Validation.TotalPoints)
	}
	if resp.Validation.Severity != "ok" {
		t.Fatalf("expected ok, got %s", resp.Validation.Severity)
	}
	if resp.Validation.Message != "277 pts remaining. Legal so far." {
		t.Fatalf("unexpected message: %q", resp.Validation.Message)
	}
}

// Unità sconosciuta: nessun errore gRPC, created=false e nessun insert.
func TestAddEntryUnknownUnit(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	repo := &fakeRepo{session: session}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	resp, err := server.AddEntry(context.Background(), &rosterv1.AddEntryRequest{
		SessionId: session.ID.String(),
		UnitName:  "Dragone",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Created {
		t.Fatalf("expected created=false for unknown unit")
	}
	if resp.Warning == "" {
		t.Fatalf("expected warning to be set")
	}
	if repo.insertCalls != 0 {
		t.Fatalf("did not expect InsertEntry to be called")
	}
}

// Cap pieno (capped-champions, limite 300 -> cap 1): l'add non crea la entry.
func TestAddEntryCapRejected(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	session.NextSeq = 2
	repo := &fakeRepo{
		session: session,
		entries: []rules.Entry{{ID: 1, Name: "Berserkers", Points: 95, Type: rules.TypeChampion}},
	}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	resp, err := server.AddEntry(context.Background(), &rosterv1.AddEntryRequest{
		SessionId: session.ID.String(),
		UnitName:  "Berserkers",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Created {
		t.Fatalf("expected created=false at cap")
	}
	if resp.Warning != "Champions: max 1 for this limit (you have 1)." {
		t.Fatalf("unexpected warning: %q", resp.Warning)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("did not expect InsertEntry to be called")
	}
}

// Edge: limite 200 -> cap 0, anche il primo champion viene rifiutato.
func TestAddEntryZeroCap(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 200)
	repo := &fakeRepo{session: session}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	resp, err := server.AddEntry(context.Background(), &rosterv1.AddEntryRequest{
		SessionId: session.ID.String(),
		UnitName:  "Berserkers",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Created {
		t.Fatalf("expected created=false at cap 0")
	}
	if repo.insertCalls != 0 {
		t.Fatalf("did not expect InsertEntry to be called")
	}
}

func TestAddEntrySessionBusy(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	repo := &fakeRepo{session: session}
	server := NewServer(slog.Default(), repo, testCatalog(), &fakeLock{ok: false})

	_, err := server.AddEntry(context.Background(), &rosterv1.AddEntryRequest{
		SessionId: session.ID.String(),
		UnitName:  "Warlord",
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestAddEntrySessionNotFound(t *testing.T) {
	repo := &fakeRepo{sessionErr: ErrSessionNotFound}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	_, err := server.AddEntry(context.Background(), &rosterv1.AddEntryRequest{
		SessionId: uuid.NewString(),
		UnitName:  "Warlord",
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestAddEntryInsertErrorInternal(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	repo := &fakeRepo{session: session, insertErr: errors.New("db down")}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	_, err := server.AddEntry(context.Background(), &rosterv1.AddEntryRequest{
		SessionId: session.ID.String(),
		UnitName:  "Warlord",
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

// La rimozione è idempotente: il secondo remove è un no-op.
func TestRemoveEntryIdempotent(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	repo := &fakeRepo{
		session: session,
		entries: []rules.Entry{{ID: 1, Name: "Warlord", Points: 5, Type: rules.TypeLeader}},
	}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	req := &rosterv1.RemoveEntryRequest{SessionId: session.ID.String(), EntryId: 1}

	resp, err := server.RemoveEntry(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Removed {
		t.Fatalf("expected removed=true on first remove")
	}
	if resp.Validation.TotalPoints != 0 {
		t.Fatalf("expected total 0 after remove, got %d", resp.Validation.TotalPoints)
	}

	resp, err = server.RemoveEntry(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error on second remove: %v", err)
	}
	if resp.Removed {
		t.Fatalf("expected removed=false on second remove")
	}
}

// Dopo il clear la sessione è identica allo stato iniziale:
// totale zero, messaggio "Ready." e ID ripartono da 1.
func TestClearRosterResetsState(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	session.NextSeq = 4
	repo := &fakeRepo{
		session: session,
		entries: []rules.Entry{
			{ID: 1, Name: "Warlord", Points: 5, Type: rules.TypeLeader},
			{ID: 3, Name: "Grunts", Points: 10, Type: rules.TypeCore},
		},
	}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	resp, err := server.ClearRoster(context.Background(), &rosterv1.ClearRosterRequest{SessionId: session.ID.String()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Validation.TotalPoints != 0 || resp.Validation.Message != "Ready." {
		t.Fatalf("expected zero state, got %+v", resp.Validation)
	}

	addResp, err := server.AddEntry(context.Background(), &rosterv1.AddEntryRequest{
		SessionId: session.ID.String(),
		UnitName:  "Warlord",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addResp.Entry.Id != 1 {
		t.Fatalf("expected id sequence reset to 1, got %d", addResp.Entry.Id)
	}
}

// Il cambio limite non rimuove mai le entry già presenti.
func TestSetPointsLimitKeepsEntries(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	repo := &fakeRepo{
		session: session,
		entries: []rules.Entry{
			{ID: 1, Name: "Warlord", Points: 120, Type: rules.TypeLeader},
			{ID: 2, Name: "Berserkers", Points: 95, Type: rules.TypeChampion},
		},
	}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	resp, err := server.SetPointsLimit(context.Background(), &rosterv1.SetPointsLimitRequest{
		SessionId:   session.ID.String(),
		PointsLimit: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.entries) != 2 {
		t.Fatalf("expected entries to survive limit change, got %d", len(repo.entries))
	}
	if resp.Validation.Severity != "danger" {
		t.Fatalf("expected danger at total 215 over limit 100, got %s", resp.Validation.Severity)
	}
	// Con limite 100 il cap champions scende a 0: il problema va segnalato.
	if !strings.Contains(resp.Validation.Message, "Champions: max 0 for this limit (you have 1).") {
		t.Fatalf("expected champion cap problem, got %q", resp.Validation.Message)
	}
}

// Il cambio fazione svuota il roster e adotta il ruleset della nuova fazione.
func TestSetFactionClearsRoster(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	repo := &fakeRepo{
		session: session,
		entries: []rules.Entry{{ID: 1, Name: "Warlord", Points: 5, Type: rules.TypeLeader}},
	}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	resp, err := server.SetFaction(context.Background(), &rosterv1.SetFactionRequest{
		SessionId: session.ID.String(),
		Faction:   "Free Blades",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.entries) != 0 {
		t.Fatalf("expected roster cleared on faction change")
	}
	if repo.session.Ruleset != rules.RulesetWeightedCore {
		t.Fatalf("expected ruleset from new faction, got %s", repo.session.Ruleset)
	}
	if resp.Validation.Message != "Ready." {
		t.Fatalf("expected Ready. after faction change, got %q", resp.Validation.Message)
	}
}

func TestSetFactionUnknownFaction(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	repo := &fakeRepo{session: session}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	_, err := server.SetFaction(context.Background(), &rosterv1.SetFactionRequest{
		SessionId: session.ID.String(),
		Faction:   "Nessuno",
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if repo.session.Faction != "Iron Legion" {
		t.Fatalf("expected session untouched on unknown faction")
	}
}

// Le entry tornano in ordine di tipo e poi di inserimento.
func TestGetRosterDisplayOrder(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	repo := &fakeRepo{
		session: session,
		entries: []rules.Entry{
			{ID: 1, Name: "Berserkers", Points: 95, Type: rules.TypeChampion},
			{ID: 2, Name: "Warlord", Points: 5, Type: rules.TypeLeader},
			{ID: 3, Name: "Grunts", Points: 10, Type: rules.TypeCore},
		},
	}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	resp, err := server.GetRoster(context.Background(), &rosterv1.GetRosterRequest{SessionId: session.ID.String()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(resp.Entries))
	}
	if resp.Entries[0].Name != "Warlord" || resp.Entries[1].Name != "Grunts" || resp.Entries[2].Name != "Berserkers" {
		t.Fatalf("unexpected display order: %v", resp.Entries)
	}
	if resp.Ruleset != rosterv1.Ruleset_RULESET_CAPPED_CHAMPIONS {
		t.Fatalf("unexpected ruleset: %v", resp.Ruleset)
	}
}

// Il session_id può arrivare dalle metadata gRPC quando manca nella request.
func TestGetRosterSessionIDFromMetadata(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	repo := &fakeRepo{session: session}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	md := metadata.Pairs(grpcx.SessionIDMetadataKey, session.ID.String())
	ctx := metadata.NewIncomingContext(context.Background(), md)

	resp, err := server.GetRoster(ctx, &rosterv1.GetRosterRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Faction != "Iron Legion" {
		t.Fatalf("unexpected faction: %s", resp.Faction)
	}
}

func TestGetRosterMissingSessionID(t *testing.T) {
	server := NewServer(slog.Default(), &fakeRepo{}, testCatalog(), openLock())

	_, err := server.GetRoster(context.Background(), &rosterv1.GetRosterRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestExportRosterText(t *testing.T) {
	session := testSession(rules.RulesetCappedChampions, 300)
	repo := &fakeRepo{
		session: session,
		entries: []rules.Entry{
			{ID: 1, Name: "Berserkers", Points: 95, Type: rules.TypeChampion},
			{ID: 2, Name: "Warlord", Points: 120, Type: rules.TypeLeader},
		},
	}
	server := NewServer(slog.Default(), repo, testCatalog(), openLock())

	resp, err := server.ExportRoster(context.Background(), &rosterv1.ExportRosterRequest{SessionId: session.ID.String()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Text, "Roster: Iron Legion (limit 300 pts)") {
		t.Fatalf("expected header in export, got:\n%s", resp.Text)
	}
	if !strings.Contains(resp.Text, "1. [LEADER] Warlord (120 pts)") {
		t.Fatalf("expected leader first in export, got:\n%s", resp.Text)
	}
	if !strings.Contains(resp.Text, "2. [CHAMPION] Berserkers (95 pts)") {
		t.Fatalf("expected champion second in export, got:\n%s", resp.Text)
	}
}
