package rules

import "sort"

// Tipi base del core di validazione.
// Nessun I/O qui: solo dati in memoria e funzioni pure.

// UnitType classifica una unità ai fini della composizione.
type UnitType string

const (
	TypeLeader   UnitType = "LEADER"
	TypeCore     UnitType = "CORE"
	TypeSpecial  UnitType = "SPECIAL"
	TypeChampion UnitType = "CHAMPION"
	TypeElite    UnitType = "ELITE"
)

// typeRank definisce l'ordine di visualizzazione per tipo.
// I tipi sconosciuti finiscono in coda.
var typeRank = map[UnitType]int{
	TypeLeader:   0,
	TypeCore:     1,
	TypeSpecial:  2,
	TypeChampion: 3,
	TypeElite:    4,
}

// Entry è una unità acquistata nel roster, con identità propria.
// L'ID è sequenziale per sessione e non viene mai riusato.
type Entry struct {
	ID     int64
	Name   string
	Points int64
	Type   UnitType
}

// TotalPoints somma i punti di tutte le entry presenti.
func TotalPoints(entries []Entry) int64 {
	var total int64
	for _, entry := range entries {
		total += entry.Points
	}
	return total
}

// SortDisplay ordina le entry per rank di tipo e poi per ID.
// L'ordine di inserimento resta stabile all'interno dello stesso tipo.
func SortDisplay(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := rankOf(entries[i].Type), rankOf(entries[j].Type)
		if ri != rj {
			return ri < rj
		}
		return entries[i].ID < entries[j].ID
	})
}

func rankOf(t UnitType) int {
	if rank, ok := typeRank[t]; ok {
		return rank
	}
	return len(typeRank)
}
