package rules

import (
	"fmt"
	"strings"
)

// ExportText produce il riepilogo testuale del roster per copia/condivisione.
// Include fazione, limite, totale, riga di composizione e le entry numerate
// in ordine di visualizzazione.
func ExportText(faction string, limit int64, entries []Entry, ruleset Ruleset) string {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	SortDisplay(ordered)

	comp := Compose(ordered, ruleset, limit)
	total := TotalPoints(ordered)

	var b strings.Builder
	fmt.Fprintf(&b, "Roster: %s (limit %d pts)\n", faction, limit)
	fmt.Fprintf(&b, "Total: %d pts\n", total)
	fmt.Fprintf(&b, "Leaders %d/1, Core %d/%d, Special %d, %s\n", comp.Leaders, comp.Core, comp.RequiredCore, comp.Special, fourthTypeLine(comp, ruleset))

	for i, entry := range ordered {
		fmt.Fprintf(&b, "%d. [%s] %s (%d pts)\n", i+1, entry.Type, entry.Name, entry.Points)
	}
	return b.String()
}

// fourthTypeLine mostra il quarto tipo con il cap quando previsto.
func fourthTypeLine(comp Composition, ruleset Ruleset) string {
	label := "Champions"
	if ruleset.FourthType == TypeElite {
		label = "Elite"
	}
	if comp.ChampionCap >= 0 {
		return fmt.Sprintf("%s %d/%d", label, comp.ChampionsOrElite, comp.ChampionCap)
	}
	return fmt.Sprintf("%s %d", label, comp.ChampionsOrElite)
}
