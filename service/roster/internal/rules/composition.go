package rules

import "fmt"

// Composition è il conteggio per tipo usato dai controlli di legalità.
type Composition struct {
	Leaders          int
	Core             int
	Special          int
	ChampionsOrElite int
	// RequiredCore è il minimo di Core imposto dal ruleset.
	RequiredCore int
	// ChampionCap vale -1 quando il ruleset non prevede cap.
	ChampionCap int
}

// Compose conta le entry per tipo e deriva requisiti e cap dal ruleset.
// Le entry con tipo sconosciuto sono escluse da tutti i conteggi.
func Compose(entries []Entry, ruleset Ruleset, limit int64) Composition {
	tally := map[UnitType]int{}
	for _, entry := range entries {
		if _, known := typeRank[entry.Type]; !known {
			continue
		}
		tally[entry.Type]++
	}

	required := 0
	for unitType, weight := range ruleset.CoreWeights {
		required += weight * tally[unitType]
	}

	championCap := -1
	if ruleset.CapDivisor > 0 {
		championCap = int(limit / ruleset.CapDivisor)
	}

	return Composition{
		Leaders:          tally[TypeLeader],
		Core:             tally[TypeCore],
		Special:          tally[TypeSpecial],
		ChampionsOrElite: tally[ruleset.FourthType],
		RequiredCore:     required,
		ChampionCap:      championCap,
	}
}

// Problems ritorna i messaggi di violazione della composizione.
// Lista vuota se e solo se la composizione è legale.
func Problems(comp Composition) []string {
	var problems []string
	if comp.Leaders != 1 {
		problems = append(problems, fmt.Sprintf("Leaders: need exactly 1 (you have %d).", comp.Leaders))
	}
	if comp.Core < comp.RequiredCore {
		problems = append(problems, fmt.Sprintf("Core: need at least %d (you have %d).", comp.RequiredCore, comp.Core))
	}
	if comp.ChampionCap >= 0 && comp.ChampionsOrElite > comp.ChampionCap {
		problems = append(problems, fmt.Sprintf("Champions: max %d for this limit (you have %d).", comp.ChampionCap, comp.ChampionsOrElite))
	}
	return problems
}

// CapAllows decide se un'altra unità del tipo dato rientra nel cap.
// È il punto di enforcement autoritativo in fase di add: con cap pieno
// l'add non crea l'entry e ritorna un warning, mai un errore.
func CapAllows(comp Composition, unitType UnitType, ruleset Ruleset) bool {
	if ruleset.CapDivisor <= 0 || unitType != ruleset.FourthType {
		return true
	}
	return comp.ChampionsOrElite < comp.ChampionCap
}
