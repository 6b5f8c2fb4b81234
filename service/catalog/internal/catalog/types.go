package catalog

import "context"

// Contratti e modelli del dominio "catalog".
// Espongono cosa serve al resto dell'app senza dettagli di DB/gRPC.
type FactionReader interface {
	ListFactions(ctx context.Context) ([]Faction, error)
	GetFaction(ctx context.Context, name string) (*FactionDetail, error)
	GetUnit(ctx context.Context, faction, name string) (Unit, error)
}

// Faction rappresenta una fazione del catalogo con il suo ruleset.
type Faction struct {
	Name    string
	Ruleset string
}

// Unit rappresenta una definizione di unità acquistabile.
// Il tipo resta una stringa: i tipi sconosciuti sono tollerati
// e semplicemente ignorati dai conteggi di composizione.
type Unit struct {
	Name   string
	Points int64
	Type   string
}

// FactionDetail è la fazione con le unità in ordine di catalogo.
type FactionDetail struct {
	Name    string
	Ruleset string
	Units   []Unit
}
