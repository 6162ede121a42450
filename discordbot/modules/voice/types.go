package voice

// Member is a transient snapshot of one voice channel participant,
// valid only for the duration of a single command invocation.
type Member struct {
	ID          string
	DisplayName string
	Bot         bool
	Mute        bool
	Deaf        bool
}

// Capability holds the mute/deafen permission flags of a guild member
// (the caller's or the bot's own). Derived fresh on every invocation.
type Capability struct {
	Mute   bool
	Deafen bool
}

// Covers returns true if c grants everything need requires.
func (c Capability) Covers(need Capability) bool {
	if need.Mute && !c.Mute {
		return false
	}

	if need.Deafen && !c.Deafen {
		return false
	}

	return true
}

// Target is the desired server mute/deafen state a command drives
// members toward. A nil dimension is left unchanged.
type Target struct {
	Mute *bool
	Deaf *bool
}

// Predicate selects which members of a roster count as differing from
// a target state.
type Predicate int

const (
	// AnyDiffering matches members differing in at least one driven
	// dimension. All bulk commands use it: a member already muted but
	// not yet deafened is still selected by a mute+deafen command, so
	// the batch converges both dimensions.
	AnyDiffering Predicate = iota
	// AllDiffering matches members differing in every driven dimension.
	AllDiffering
)

// Differs reports whether m's current state differs from t under pred.
// Only driven (non-nil) dimensions are considered.
func (t Target) Differs(m Member, pred Predicate) bool {
	muteDiff := t.Mute != nil && m.Mute != *t.Mute
	deafDiff := t.Deaf != nil && m.Deaf != *t.Deaf

	if pred == AllDiffering {
		if t.Mute != nil && !muteDiff {
			return false
		}

		if t.Deaf != nil && !deafDiff {
			return false
		}

		return t.Mute != nil || t.Deaf != nil
	}

	return muteDiff || deafDiff
}

// Matches reports whether m already holds every driven dimension of t.
// Used by individual-target commands for the already-in-that-state
// short circuit; it is the exact complement of AnyDiffering.
func (t Target) Matches(m Member) bool {
	return !t.Differs(m, AnyDiffering)
}

func ptr(v bool) *bool {
	return &v
}
