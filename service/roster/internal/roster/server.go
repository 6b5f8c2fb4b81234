package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	catalogv1 "ArmyForge/proto/catalog/v1"
	rosterv1 "ArmyForge/proto/roster/v1"
	"ArmyForge/pkg/grpcx"
	"ArmyForge/service/roster/internal/lock"
	"ArmyForge/service/roster/internal/rules"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Server implementa l'interfaccia gRPC RosterService.
// Integra il catalog-svc per risolvere le definizioni di unità
// e serializza le mutazioni per sessione con un lock Redis.
type Server struct {
	rosterv1.UnimplementedRosterServiceServer
	logger  *slog.Logger
	repo    SessionRepo
	catalog catalogv1.CatalogServiceClient
	locker  lock.Manager
}

// SessionRepo is the minimal persistence interface used by the server.
type SessionRepo interface {
	CreateSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, id uuid.UUID) (Session, error)
	ListEntries(ctx context.Context, sessionID uuid.UUID) ([]rules.Entry, error)
	InsertEntry(ctx context.Context, sessionID uuid.UUID, entry rules.Entry) error
	DeleteEntry(ctx context.Context, sessionID uuid.UUID, entryID int64) (bool, error)
	ClearEntries(ctx context.Context, sessionID uuid.UUID) error
	UpdatePointsLimit(ctx context.Context, sessionID uuid.UUID, limit int64) error
	UpdateFactionAndClear(ctx context.Context, sessionID uuid.UUID, faction, ruleset string) error
}

// NewServer collega logger, repo, client del catalog-svc e lock manager.
func NewServer(logger *slog.Logger, repo SessionRepo, catalog catalogv1.CatalogServiceClient, locker lock.Manager) *Server {
	return &Server{logger: logger, repo: repo, catalog: catalog, locker: locker}
}

// CreateSession valida fazione e limite e crea la sessione di roster.
func (s *Server) CreateSession(ctx context.Context, req *rosterv1.CreateSessionRequest) (*rosterv1.CreateSessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if strings.TrimSpace(req.Faction) == "" {
		return nil, status.Error(codes.InvalidArgument, "faction is required")
	}
	if req.PointsLimit <= 0 {
		return nil, status.Error(codes.InvalidArgument, "points_limit must be positive")
	}

	// 1) Risolve la fazione via catalog-svc.
	faction, err := s.factionByName(ctx, req.Faction)
	if err != nil {
		return nil, err
	}

	// 2) Sceglie il ruleset: richiesta esplicita, poi hint della fazione.
	ruleset, err := s.resolveRuleset(req.Ruleset, faction.Ruleset)
	if err != nil {
		return nil, err
	}

	// 3) Inserisce la sessione con il contatore entry al valore iniziale.
	session := Session{
		ID:          uuid.New(),
		Faction:     faction.Name,
		PointsLimit: req.PointsLimit,
		Ruleset:     ruleset.Name,
		NextSeq:     1,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		s.logger.Error("errore creazione sessione", "error", err)
		return nil, status.Error(codes.Internal, "failed to create session")
	}

	s.logger.Info("sessione creata", "session_id", session.ID, "faction", session.Faction, "ruleset", session.Ruleset)
	return &rosterv1.CreateSessionResponse{SessionId: session.ID.String()}, nil
}

// AddEntry risolve l'unità dal catalogo e la aggiunge al roster.
// Unità sconosciuta o cap pieno non sono errori: l'add non crea
// nulla e la risposta porta created=false con un warning.
func (s *Server) AddEntry(ctx context.Context, req *rosterv1.AddEntryRequest) (*rosterv1.AddEntryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	sessionID, err := sessionIDFromRequest(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.UnitName) == "" {
		return nil, status.Error(codes.InvalidArgument, "unit_name is required")
	}

	// 1) Acquisisce il lock Redis per serializzare le mutazioni.
	release, err := s.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	// 2) Carica sessione, ruleset ed entry correnti.
	session, ruleset, entries, err := s.loadRoster(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// 3) Risolve la definizione di unità via catalog-svc.
	unit, found, err := s.unitByName(ctx, session.Faction, req.UnitName)
	if err != nil {
		return nil, err
	}
	if !found {
		return &rosterv1.AddEntryResponse{
			Created:    false,
			Warning:    fmt.Sprintf("Unknown unit %q for faction %s.", req.UnitName, session.Faction),
			Validation: buildValidation(session, ruleset, entries),
		}, nil
	}

	// 4) Enforcement del cap in fase di add (punto autoritativo).
	unitType := rules.UnitType(unit.UnitType)
	comp := rules.Compose(entries, ruleset, session.PointsLimit)
	if !rules.CapAllows(comp, unitType, ruleset) {
		return &rosterv1.AddEntryResponse{
			Created:    false,
			Warning:    fmt.Sprintf("Champions: max %d for this limit (you have %d).", comp.ChampionCap, comp.ChampionsOrElite),
			Validation: buildValidation(session, ruleset, entries),
		}, nil
	}

	// 5) Inserisce la entry con un ID fresco dal contatore di sessione.
	entry := rules.Entry{
		ID:     session.NextSeq,
		Name:   unit.Name,
		Points: unit.Points,
		Type:   unitType,
	}
	if err := s.repo.InsertEntry(ctx, sessionID, entry); err != nil {
		s.logger.Error("errore insert entry", "error", err, "session_id", sessionID)
		return nil, status.Error(codes.Internal, "failed to add entry")
	}

	entries = append(entries, entry)
	s.logger.Info("entry aggiunta", "session_id", sessionID, "entry_id", entry.ID, "unit", entry.Name)
	return &rosterv1.AddEntryResponse{
		Created:    true,
		Entry:      toProtoEntry(entry),
		Validation: buildValidation(session, ruleset, entries),
	}, nil
}

// RemoveEntry rimuove una entry per ID; la rimozione è idempotente.
func (s *Server) RemoveEntry(ctx context.Context, req *rosterv1.RemoveEntryRequest) (*rosterv1.RemoveEntryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	sessionID, err := sessionIDFromRequest(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}

	release, err := s.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, ruleset, _, err := s.loadRoster(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	removed, err := s.repo.DeleteEntry(ctx, sessionID, req.EntryId)
	if err != nil {
		s.logger.Error("errore delete entry", "error", err, "session_id", sessionID)
		return nil, status.Error(codes.Internal, "failed to remove entry")
	}

	entries, err := s.repo.ListEntries(ctx, sessionID)
	if err != nil {
		s.logger.Error("errore lettura entry", "error", err, "session_id", sessionID)
		return nil, status.Error(codes.Internal, "failed to load entries")
	}

	return &rosterv1.RemoveEntryResponse{
		Removed:    removed,
		Validation: buildValidation(session, ruleset, entries),
	}, nil
}

// ClearRoster svuota la sessione e riparte con il contatore iniziale.
func (s *Server) ClearRoster(ctx context.Context, req *rosterv1.ClearRosterRequest) (*rosterv1.ClearRosterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	sessionID, err := sessionIDFromRequest(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}

	release, err := s.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, ruleset, _, err := s.loadRoster(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ClearEntries(ctx, sessionID); err != nil {
		s.logger.Error("errore clear roster", "error", err, "session_id", sessionID)
		return nil, status.Error(codes.Internal, "failed to clear roster")
	}

	return &rosterv1.ClearRosterResponse{
		Validation: buildValidation(session, ruleset, nil),
	}, nil
}

// SetPointsLimit cambia il limite punti; le entry presenti restano.
func (s *Server) SetPointsLimit(ctx context.Context, req *rosterv1.SetPointsLimitRequest) (*rosterv1.SetPointsLimitResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	sessionID, err := sessionIDFromRequest(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	if req.PointsLimit <= 0 {
		return nil, status.Error(codes.InvalidArgument, "points_limit must be positive")
	}

	release, err := s.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, ruleset, entries, err := s.loadRoster(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePointsLimit(ctx, sessionID, req.PointsLimit); err != nil {
		s.logger.Error("errore update limite", "error", err, "session_id", sessionID)
		return nil, status.Error(codes.Internal, "failed to update points limit")
	}

	session.PointsLimit = req.PointsLimit
	return &rosterv1.SetPointsLimitResponse{
		Validation: buildValidation(session, ruleset, entries),
	}, nil
}

// SetFaction cambia fazione: il roster viene svuotato perché una
// sessione è sempre omogenea a una sola fazione.
func (s *Server) SetFaction(ctx context.Context, req *rosterv1.SetFactionRequest) (*rosterv1.SetFactionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	sessionID, err := sessionIDFromRequest(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Faction) == "" {
		return nil, status.Error(codes.InvalidArgument, "faction is required")
	}

	// 1) Risolve la nuova fazione via catalog-svc prima di toccare la sessione.
	faction, err := s.factionByName(ctx, req.Faction)
	if err != nil {
		return nil, err
	}
	ruleset, err := s.resolveRuleset(rosterv1.Ruleset_RULESET_UNSPECIFIED, faction.Ruleset)
	if err != nil {
		return nil, err
	}

	release, err := s.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, _, _, err := s.loadRoster(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// 2) Applica fazione e ruleset nuovi svuotando il roster.
	if err := s.repo.UpdateFactionAndClear(ctx, sessionID, faction.Name, ruleset.Name); err != nil {
		s.logger.Error("errore cambio fazione", "error", err, "session_id", sessionID)
		return nil, status.Error(codes.Internal, "failed to change faction")
	}

	session.Faction = faction.Name
	session.Ruleset = ruleset.Name
	s.logger.Info("fazione cambiata", "session_id", sessionID, "faction", faction.Name)
	return &rosterv1.SetFactionResponse{
		Validation: buildValidation(session, ruleset, nil),
	}, nil
}

// GetRoster ritorna le entry in ordine di visualizzazione con lo
// snapshot di validazione corrente.
func (s *Server) GetRoster(ctx context.Context, req *rosterv1.GetRosterRequest) (*rosterv1.GetRosterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	sessionID, err := sessionIDFromRequest(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}

	session, ruleset, entries, err := s.loadRoster(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rules.SortDisplay(entries)
	protoEntries := make([]*rosterv1.Entry, 0, len(entries))
	for _, entry := range entries {
		protoEntries = append(protoEntries, toProtoEntry(entry))
	}

	return &rosterv1.GetRosterResponse{
		Faction:     session.Faction,
		PointsLimit: session.PointsLimit,
		Ruleset:     rulesetToProto(session.Ruleset),
		Entries:     protoEntries,
		Validation:  buildValidation(session, ruleset, entries),
	}, nil
}

// ExportRoster produce il riepilogo testuale per copia/condivisione.
func (s *Server) ExportRoster(ctx context.Context, req *rosterv1.ExportRosterRequest) (*rosterv1.ExportRosterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	sessionID, err := sessionIDFromRequest(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}

	session, ruleset, entries, err := s.loadRoster(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	text := rules.ExportText(session.Faction, session.PointsLimit, entries, ruleset)
	return &rosterv1.ExportRosterResponse{Text: text}, nil
}

// lockSession acquisisce il lock per la sessione e ritorna la release.
func (s *Server) lockSession(ctx context.Context, sessionID uuid.UUID) (func(), error) {
	if s.locker == nil {
		return nil, status.Error(codes.Internal, "redis lock not configured")
	}

	lockKey := "lock:roster:" + sessionID.String()
	token, ok, err := s.locker.Acquire(ctx, lockKey)
	if err != nil {
		s.logger.Error("errore acquisizione lock redis", "error", err, "session_id", sessionID)
		return nil, status.Error(codes.Internal, "failed to acquire session lock")
	}
	if !ok {
		return nil, status.Error(codes.FailedPrecondition, "session is busy")
	}

	return func() {
		if err := s.locker.Release(context.Background(), lockKey, token); err != nil {
			s.logger.Warn("errore rilascio lock redis", "error", err, "session_id", sessionID)
		}
	}, nil
}

// loadRoster carica sessione, ruleset ed entry correnti.
func (s *Server) loadRoster(ctx context.Context, sessionID uuid.UUID) (Session, rules.Ruleset, []rules.Entry, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return Session{}, rules.Ruleset{}, nil, status.Error(codes.NotFound, "session not found")
		}
		s.logger.Error("errore lettura sessione", "error", err, "session_id", sessionID)
		return Session{}, rules.Ruleset{}, nil, status.Error(codes.Internal, "failed to load session")
	}

	ruleset, ok := rules.ByName(session.Ruleset)
	if !ok {
		s.logger.Error("ruleset sconosciuto in sessione", "session_id", sessionID, "ruleset", session.Ruleset)
		return Session{}, rules.Ruleset{}, nil, status.Error(codes.Internal, "unknown ruleset in session")
	}

	entries, err := s.repo.ListEntries(ctx, sessionID)
	if err != nil {
		s.logger.Error("errore lettura entry", "error", err, "session_id", sessionID)
		return Session{}, rules.Ruleset{}, nil, status.Error(codes.Internal, "failed to load entries")
	}

	return session, ruleset, entries, nil
}

// factionByName chiama GetFaction e mappa gli errori gRPC del catalog-svc.
func (s *Server) factionByName(ctx context.Context, name string) (*catalogv1.GetFactionResponse, error) {
	if s.catalog == nil {
		return nil, status.Error(codes.Internal, "catalog client not configured")
	}
	resp, err := s.catalog.GetFaction(ctx, &catalogv1.GetFactionRequest{Name: name})
	if err != nil {
		if grpcStatus, ok := status.FromError(err); ok {
			switch grpcStatus.Code() {
			case codes.NotFound, codes.InvalidArgument:
				return nil, grpcStatus.Err()
			default:
				s.logger.Error("errore catalog-svc su GetFaction", "error", err, "faction", name)
				return nil, status.Error(codes.Internal, "failed to resolve faction")
			}
		}
		return nil, status.Error(codes.Internal, "failed to resolve faction")
	}
	return resp, nil
}

// unitByName chiama GetUnit; unità sconosciuta ritorna found=false, non errore.
func (s *Server) unitByName(ctx context.Context, faction, name string) (*catalogv1.Unit, bool, error) {
	if s.catalog == nil {
		return nil, false, status.Error(codes.Internal, "catalog client not configured")
	}
	resp, err := s.catalog.GetUnit(ctx, &catalogv1.GetUnitRequest{Faction: faction, Name: name})
	if err != nil {
		if grpcStatus, ok := status.FromError(err); ok && grpcStatus.Code() == codes.NotFound {
			return nil, false, nil
		}
		s.logger.Error("errore catalog-svc su GetUnit", "error", err, "faction", faction, "unit", name)
		return nil, false, status.Error(codes.Internal, "failed to resolve unit")
	}
	return resp.Unit, true, nil
}

// resolveRuleset sceglie il ruleset tra richiesta esplicita e hint della fazione.
func (s *Server) resolveRuleset(requested rosterv1.Ruleset, factionHint string) (rules.Ruleset, error) {
	switch requested {
	case rosterv1.Ruleset_RULESET_CAPPED_CHAMPIONS:
		return rules.CappedChampions(), nil
	case rosterv1.Ruleset_RULESET_WEIGHTED_CORE:
		return rules.WeightedCore(), nil
	case rosterv1.Ruleset_RULESET_UNSPECIFIED:
		if ruleset, ok := rules.ByName(factionHint); ok {
			return ruleset, nil
		}
		// Hint assente o sconosciuto: variante con cap come default.
		s.logger.Warn("ruleset hint sconosciuto, uso default", "hint", factionHint)
		return rules.CappedChampions(), nil
	default:
		return rules.Ruleset{}, status.Error(codes.InvalidArgument, "unknown ruleset")
	}
}

// sessionIDFromRequest prova prima dal campo request, poi dalle metadata
// gRPC, infine dal context locale.
func sessionIDFromRequest(ctx context.Context, raw string) (uuid.UUID, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(grpcx.SessionIDMetadataKey); len(values) > 0 {
				value = strings.TrimSpace(values[0])
			}
		}
	}
	if value == "" {
		if local, ok := ctx.Value(grpcx.ContextSessionIDKey).(string); ok {
			value = strings.TrimSpace(local)
		}
	}
	if value == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "session_id is required")
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "session_id must be a valid UUID")
	}
	return parsed, nil
}

// buildValidation ricalcola lo snapshot dopo ogni mutazione.
func buildValidation(session Session, ruleset rules.Ruleset, entries []rules.Entry) *rosterv1.Validation {
	total := rules.TotalPoints(entries)
	comp := rules.Compose(entries, ruleset, session.PointsLimit)
	severity, message := rules.Classify(total, session.PointsLimit, rules.Problems(comp))

	return &rosterv1.Validation{
		TotalPoints: total,
		Composition: &rosterv1.Composition{
			Leaders:          int32(comp.Leaders),
			Core:             int32(comp.Core),
			Special:          int32(comp.Special),
			ChampionsOrElite: int32(comp.ChampionsOrElite),
			RequiredCore:     int32(comp.RequiredCore),
			ChampionCap:      int32(comp.ChampionCap),
		},
		Severity: string(severity),
		Message:  message,
	}
}

func toProtoEntry(entry rules.Entry) *rosterv1.Entry {
	return &rosterv1.Entry{
		Id:       entry.ID,
		Name:     entry.Name,
		Points:   entry.Points,
		UnitType: string(entry.Type),
	}
}

func rulesetToProto(name string) rosterv1.Ruleset {
	switch name {
	case rules.RulesetCappedChampions:
		return rosterv1.Ruleset_RULESET_CAPPED_CHAMPIONS
	case rules.RulesetWeightedCore:
		return rosterv1.Ruleset_RULESET_WEIGHTED_CORE
	default:
		return rosterv1.Ruleset_RULESET_UNSPECIFIED
	}
}
