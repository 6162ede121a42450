package voice

import (
	"fmt"
	"strings"
)

const emojiCross = "❌"

// defaultMessages backs every general message table key, so a partial
// or missing user configuration never leaves a reply blank.
var defaultMessages = map[string]string{
	"no_voice_channel":      emojiCross + " You must be in a voice channel to use this command",
	"target_not_in_channel": emojiCross + " The specified user is not in your voice channel!",
	"no_permission":         emojiCross + " You don't have permission to mute/unmute members",
	"bot_no_permission":     emojiCross + " Bot doesn't have permission to mute/unmute members",
	"error_occurred":        emojiCross + " An error occurred while processing the command",
}

// Formatter renders mutation outcomes and guard failures into
// user-facing text using a configurable message table. It is a pure
// lookup layer; unknown keys fall back to built-in defaults.
type Formatter struct {
	messages map[string]string
}

// NewFormatter provides a formatter over the configured message table.
// A nil table is valid and yields defaults for everything.
func NewFormatter(messages map[string]string) *Formatter {
	return &Formatter{messages: messages}
}

func (f *Formatter) lookup(key, fallback string) string {
	if v, ok := f.messages[key]; ok && v != "" {
		return v
	}

	return fallback
}

// Guard renders a guard failure message.
func (f *Formatter) Guard(kind GuardKind) string {
	key := kind.messageKey()

	return f.lookup(key, defaultMessages[key])
}

// OperationFailed renders the generic catch-all message. Internal
// detail stays in the server log.
func (f *Formatter) OperationFailed() string {
	return f.lookup("error_occurred", defaultMessages["error_occurred"])
}

// BulkSuccess renders the reply for a completed bulk command,
// reflecting the count of members actually changed.
func (f *Formatter) BulkSuccess(cmd *Command, succeeded int) string {
	return fmt.Sprintf("%s (%d members)", f.lookup(cmd.SuccessKey, cmd.defaultSuccess), succeeded)
}

// BulkNoop renders the reply for a bulk command that found everyone
// already at the target state.
func (f *Formatter) BulkNoop(cmd *Command) string {
	return f.lookup(cmd.NoopKey, cmd.defaultNoop)
}

// SingleSuccess renders the reply for a completed individual command.
func (f *Formatter) SingleSuccess(cmd *Command, m Member) string {
	return fmt.Sprintf("%s %s %s", cmd.Emoji, cmd.Label, m.DisplayName)
}

// SingleAlready renders the reply when the individual target already
// holds the requested state.
func (f *Formatter) SingleAlready(cmd *Command, m Member) string {
	return fmt.Sprintf("%s %s is %s!", emojiCross, m.DisplayName, cmd.Already)
}

// SingleForbidden renders the reply when the platform rejected the
// edit of the individual target.
func (f *Formatter) SingleForbidden(cmd *Command, m Member) string {
	return fmt.Sprintf("%s Cannot %s %s - insufficient permissions!", emojiCross, verb(cmd), m.DisplayName)
}

// verb derives the imperative form from the command name, e.g.
// "mutedeafen" -> "mute+deafen".
func verb(cmd *Command) string {
	switch {
	case strings.HasPrefix(cmd.Name, "unmute") && len(cmd.Name) > len("unmute"):
		return "unmute+" + cmd.Name[len("unmute"):]
	case strings.HasPrefix(cmd.Name, "mute") && len(cmd.Name) > len("mute"):
		return "mute+" + cmd.Name[len("mute"):]
	default:
		return cmd.Name
	}
}
