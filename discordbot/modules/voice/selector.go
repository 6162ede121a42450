package voice

// Select returns the members of roster whose state differs from target
// under pred. Bot accounts are never selected. Order follows the
// roster, so downstream failure reports are reproducible.
//
// An empty result is a normal outcome meaning everyone already matches.
func Select(roster []Member, target Target, pred Predicate) []Member {
	var out []Member

	for _, m := range roster {
		if m.Bot {
			continue
		}

		if target.Differs(m, pred) {
			out = append(out, m)
		}
	}

	return out
}
