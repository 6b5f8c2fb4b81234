package rules

// Ruleset descrive la variante di regole attiva per una sessione.
// Un solo core serve entrambe le varianti: cambia solo quali tipi
// pesano sul requisito Core e se il quarto tipo ha un cap.
type Ruleset struct {
	Name string
	// FourthType è il quarto slot della composizione (Champion o Elite).
	FourthType UnitType
	// CoreWeights indica quanto ogni tipo pesa sul minimo di Core richiesto.
	CoreWeights map[UnitType]int
	// CapDivisor deriva il cap del quarto tipo da floor(limit/CapDivisor).
	// Zero significa nessun cap.
	CapDivisor int64
}

// Nomi persistiti nelle sessioni.
const (
	RulesetCappedChampions = "capped-champions"
	RulesetWeightedCore    = "weighted-core"
)

// CappedChampions: requiredCore = special, Champion con cap floor(limit/250).
func CappedChampions() Ruleset {
	return Ruleset{
		Name:        RulesetCappedChampions,
		FourthType:  TypeChampion,
		CoreWeights: map[UnitType]int{TypeSpecial: 1},
		CapDivisor:  250,
	}
}

// WeightedCore: requiredCore = special + 2*elite, nessun cap sul quarto tipo.
func WeightedCore() Ruleset {
	return Ruleset{
		Name:       RulesetWeightedCore,
		FourthType: TypeElite,
		CoreWeights: map[UnitType]int{
			TypeSpecial: 1,
			TypeElite:   2,
		},
	}
}

// ByName risolve il ruleset persistito; ok=false per nomi sconosciuti.
func ByName(name string) (Ruleset, bool) {
	switch name {
	case RulesetCappedChampions:
		return CappedChampions(), true
	case RulesetWeightedCore:
		return WeightedCore(), true
	default:
		return Ruleset{}, false
	}
}
