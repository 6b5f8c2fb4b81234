package rules

import "testing"

// Tabella di decisione dello stato, un caso per riga.

func TestClassifyEmptyRoster(t *testing.T) {
	severity, message := Classify(0, 300, nil)
	if severity != SeverityOK || message != "Ready." {
		t.Fatalf("expected ok/Ready., got %s/%q", severity, message)
	}
}

// "Ready." vale solo a totale zero: anche con problemi la severity resta ok.
func TestClassifyZeroTotalWinsOverProblems(t *testing.T) {
	severity, message := Classify(0, 300, []string{"Leaders: need exactly 1 (you have 0)."})
	if severity != SeverityOK || message != "Ready." {
		t.Fatalf("expected ok/Ready. at total 0, got %s/%q", severity, message)
	}
}

func TestClassifyExactPointsLegal(t *testing.T) {
	severity, message := Classify(300, 300, nil)
	if severity != SeverityOK {
		t.Fatalf("expected ok, got %s", severity)
	}
	if message != "Legal: exact points and legal composition." {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestClassifyUnderLimitLegal(t *testing.T) {
	severity, message := Classify(23, 300, nil)
	if severity != SeverityOK {
		t.Fatalf("expected ok, got %s", severity)
	}
	if message != "277 pts remaining. Legal so far." {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestClassifyUnderLimitWithProblems(t *testing.T) {
	problems := []string{
		"Leaders: need exactly 1 (you have 0).",
		"Core: need at least 2 (you have 0).",
	}
	severity, message := Classify(50, 200, problems)
	if severity != SeverityWarn {
		t.Fatalf("expected warn, got %s", severity)
	}
	want := "150 pts remaining. Leaders: need exactly 1 (you have 0). Core: need at least 2 (you have 0)."
	if message != want {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestClassifyOverLimit(t *testing.T) {
	severity, message := Classify(320, 300, nil)
	if severity != SeverityDanger {
		t.Fatalf("expected danger, got %s", severity)
	}
	if message != "Over by 20 pts." {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestClassifyOverLimitWithProblems(t *testing.T) {
	severity, message := Classify(320, 300, []string{"Leaders: need exactly 1 (you have 2)."})
	if severity != SeverityDanger {
		t.Fatalf("expected danger, got %s", severity)
	}
	if message != "Over by 20 pts. Leaders: need exactly 1 (you have 2)." {
		t.Fatalf("unexpected message: %q", message)
	}
}
