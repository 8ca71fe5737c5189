package engine

// Luby generates the Luby restart sequence 1, 1, 2, 1, 1, 2, 4, 1, 1,
// 2, 1, 1, 2, 4, 8, ... (Luby, Sinclair, Zuckerman 1993), the same
// sequence a CDCL solver uses to pace restarts. Here it paces the
// Passive queue's age/weight interleave (spec.md §4.8: "a priority
// queue over a configurable heuristic (e.g., (age, weight) with
// interleaving)"): Next()'s value is how many consecutive
// weight-ordered pops happen before one age-ordered pop is forced,
// which keeps the search from starving old clauses without giving up
// weight-based guidance's efficiency.
type Luby struct {
	i int
}

// NewLuby creates a Luby sequence generator positioned before its
// first term.
func NewLuby() *Luby { return &Luby{i: 0} }

// Next returns the next term of the sequence.
func (l *Luby) Next() int {
	l.i++
	return lubyTerm(l.i)
}

func lubyTerm(i int) int {
	for k := 1; ; k++ {
		full := (1 << uint(k)) - 1
		if full == i {
			return 1 << uint(k-1)
		}
		if full > i {
			return lubyTerm(i - (1<<uint(k-1) - 1))
		}
	}
}
