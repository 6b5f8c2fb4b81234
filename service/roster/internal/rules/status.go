package rules

import (
	"fmt"
	"strings"
)

// Severity classifica lo stato del roster per il layer di presentazione.
type Severity string

const (
	SeverityOK     Severity = "ok"
	SeverityWarn   Severity = "warn"
	SeverityDanger Severity = "danger"
)

// Classify applica la tabella di decisione dello stato.
// Valutazione stateless: total e problems arrivano già calcolati.
func Classify(total, limit int64, problems []string) (Severity, string) {
	if total == 0 {
		return SeverityOK, "Ready."
	}

	if total <= limit {
		if len(problems) == 0 {
			if total == limit {
				return SeverityOK, "Legal: exact points and legal composition."
			}
			return SeverityOK, fmt.Sprintf("%d pts remaining. Legal so far.", limit-total)
		}
		return SeverityWarn, fmt.Sprintf("%d pts remaining. ", limit-total) + strings.Join(problems, " ")
	}

	if len(problems) == 0 {
		return SeverityDanger, fmt.Sprintf("Over by %d pts.", total-limit)
	}
	return SeverityDanger, fmt.Sprintf("Over by %d pts. ", total-limit) + strings.Join(problems, " ")
}
