package rules

// Signal is the outcome of evaluating a generation against the termination policy
type Signal int

const (
	// Continue means the run should go on to the next generation
	Continue Signal = iota
	// AllDead means no living cells remain
	AllDead
	// Stagnant means the generation is identical to its predecessor
	Stagnant
)

// Evaluate maps the counters of a finished step to a Signal.
// AllDead is checked before Stagnant.
func Evaluate(living, changed int) Signal {
	if living == 0 {
		return AllDead
	}
	if changed == 0 {
		return Stagnant
	}
	return Continue
}

// Terminal reports whether the run ends on this signal
func (s Signal) Terminal() bool {
	return s == AllDead || s == Stagnant
}

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case AllDead:
		return "all dead"
	case Stagnant:
		return "stagnant"
	default:
		return "unknown"
	}
}

// Summary returns the end-of-run message for a terminal signal
func (s Signal) Summary() string {
	switch s {
	case AllDead:
		return "Game Over: all died"
	case Stagnant:
		return "Game Over, your colony is stagnating for lifetime"
	default:
		return ""
	}
}
