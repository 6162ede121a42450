package voice

// Command describes one target-state permutation: its individual and
// bulk command names, the state it drives members toward, the
// capability it requires, and the message table keys it renders with.
type Command struct {
	Name     string
	BulkName string
	Target   Target
	Need     Capability
	Phrase   string
	Label    string
	Already  string
	Emoji    string

	SuccessKey string
	NoopKey    string

	defaultSuccess string
	defaultNoop    string
}

const (
	emojiMuted   = "\U0001f507"
	emojiUnmuted = "\U0001f50a"
)

// Table lists all eight target-state permutations. Both command
// surfaces resolve names against it, so the two stay in lockstep.
var Table = []*Command{
	{
		Name:           "mute",
		BulkName:       "muteall",
		Target:         Target{Mute: ptr(true)},
		Need:           Capability{Mute: true},
		Phrase:         "Mute",
		Label:          "Muted",
		Already:        "already muted",
		Emoji:          emojiMuted,
		SuccessKey:     "mute_all_success",
		NoopKey:        "mute_all_noop",
		defaultSuccess: emojiMuted + " Muted all members in voice channel",
		defaultNoop:    emojiMuted + " All members in the voice channel are already muted!",
	},
	{
		Name:           "unmute",
		BulkName:       "unmuteall",
		Target:         Target{Mute: ptr(false)},
		Need:           Capability{Mute: true},
		Phrase:         "Unmute",
		Label:          "Unmuted",
		Already:        "not muted",
		Emoji:          emojiUnmuted,
		SuccessKey:     "unmute_all_success",
		NoopKey:        "unmute_all_noop",
		defaultSuccess: emojiUnmuted + " Unmuted all members in voice channel",
		defaultNoop:    emojiUnmuted + " All members in the voice channel are already unmuted!",
	},
	{
		Name:           "deafen",
		BulkName:       "deafenall",
		Target:         Target{Deaf: ptr(true)},
		Need:           Capability{Deafen: true},
		Phrase:         "Deafen",
		Label:          "Deafened",
		Already:        "already deafened",
		Emoji:          emojiMuted,
		SuccessKey:     "deafen_all_success",
		NoopKey:        "deafen_all_noop",
		defaultSuccess: emojiMuted + " Deafened all members in voice channel",
		defaultNoop:    emojiMuted + " All members in the voice channel are already deafened!",
	},
	{
		Name:           "undeafen",
		BulkName:       "undeafenall",
		Target:         Target{Deaf: ptr(false)},
		Need:           Capability{Deafen: true},
		Phrase:         "Undeafen",
		Label:          "Undeafened",
		Already:        "not deafened",
		Emoji:          emojiUnmuted,
		SuccessKey:     "undeafen_all_success",
		NoopKey:        "undeafen_all_noop",
		defaultSuccess: emojiUnmuted + " Undeafen all members in voice channel",
		defaultNoop:    emojiUnmuted + " All members in the voice channel are already undeafened!",
	},
	{
		Name:           "mutedeafen",
		BulkName:       "mutedeafenall",
		Target:         Target{Mute: ptr(true), Deaf: ptr(true)},
		Need:           Capability{Mute: true, Deafen: true},
		Phrase:         "Mute and deafen",
		Label:          "Muted+Deafened",
		Already:        "already muted+deafened",
		Emoji:          emojiMuted,
		SuccessKey:     "mutedeafen_all_success",
		NoopKey:        "mutedeafen_all_noop",
		defaultSuccess: emojiMuted + " Muted+Deafened all members in voice channel",
		defaultNoop:    emojiMuted + " All members already muted+deafened!",
	},
	{
		Name:           "muteundeafen",
		BulkName:       "muteundeafenall",
		Target:         Target{Mute: ptr(true), Deaf: ptr(false)},
		Need:           Capability{Mute: true, Deafen: true},
		Phrase:         "Mute and undeafen",
		Label:          "Muted+Undeafened",
		Already:        "already muted+undeafened",
		Emoji:          emojiMuted,
		SuccessKey:     "muteundeafen_all_success",
		NoopKey:        "muteundeafen_all_noop",
		defaultSuccess: emojiMuted + " Muted+Undeafened all members in voice channel",
		defaultNoop:    emojiMuted + " All members already muted+undeafened!",
	},
	{
		Name:           "unmuteundeafen",
		BulkName:       "unmuteundeafenall",
		Target:         Target{Mute: ptr(false), Deaf: ptr(false)},
		Need:           Capability{Mute: true, Deafen: true},
		Phrase:         "Unmute and undeafen",
		Label:          "Unmuted+Undeafened",
		Already:        "already unmuted+undeafened",
		Emoji:          emojiUnmuted,
		SuccessKey:     "unmuteundeafen_all_success",
		NoopKey:        "unmuteundeafen_all_noop",
		defaultSuccess: emojiUnmuted + " Unmuted+Undeafened all members in voice channel",
		defaultNoop:    emojiUnmuted + " All members already unmuted+undeafened!",
	},
	{
		Name:           "unmutedeafen",
		BulkName:       "unmutedeafenall",
		Target:         Target{Mute: ptr(false), Deaf: ptr(true)},
		Need:           Capability{Mute: true, Deafen: true},
		Phrase:         "Unmute and deafen",
		Label:          "Unmuted+Deafened",
		Already:        "already unmuted+deafened",
		Emoji:          emojiUnmuted,
		SuccessKey:     "unmutedeafen_all_success",
		NoopKey:        "unmutedeafen_all_noop",
		defaultSuccess: emojiUnmuted + " Unmuted+Deafened all members in voice channel",
		defaultNoop:    emojiMuted + " All members already unmuted+deafened!",
	},
}

// Lookup finds a table entry by individual or bulk command name.
// The second result tells which form matched.
func Lookup(name string) (cmd *Command, bulk bool) {
	for _, c := range Table {
		if c.Name == name {
			return c, false
		}

		if c.BulkName == name {
			return c, true
		}
	}

	return nil, false
}
