package voice

import (
	"github.com/sirupsen/logrus"
)

// GuardKind identifies which precondition stopped a command before any
// mutation happened.
type GuardKind int

const (
	// GuardNoVoiceChannel means the caller is not in a voice channel.
	GuardNoVoiceChannel GuardKind = iota
	// GuardTargetNotInChannel means the named member is not in the
	// caller's voice channel.
	GuardTargetNotInChannel
	// GuardCallerPermission means the caller lacks the capability the
	// command needs.
	GuardCallerPermission
	// GuardBotPermission means the bot account itself lacks the
	// capability.
	GuardBotPermission
)

func (k GuardKind) messageKey() string {
	switch k {
	case GuardNoVoiceChannel:
		return "no_voice_channel"
	case GuardTargetNotInChannel:
		return "target_not_in_channel"
	case GuardCallerPermission:
		return "no_permission"
	case GuardBotPermission:
		return "bot_no_permission"
	}

	return "error_occurred"
}

// RosterProvider answers voice channel membership questions from the
// platform's current state.
type RosterProvider interface {
	// VoiceChannel returns the id of the voice channel userID currently
	// occupies in the guild, or "" if none.
	VoiceChannel(guildID, userID string) (string, error)
	// Roster returns a snapshot of the channel's occupants.
	Roster(guildID, channelID string) ([]Member, error)
}

// CapabilityProvider derives mute/deafen capabilities from the
// platform's permission model.
type CapabilityProvider interface {
	MemberCapability(guildID, userID string) (Capability, error)
	BotCapability(guildID string) (Capability, error)
}

// Responder delivers one reply to whatever surface invoked the
// command. Ephemeral replies are visible to the caller only; surfaces
// without that concept may ignore the flag.
type Responder interface {
	Respond(content string, ephemeral bool) error
}

// Dispatcher runs the shared guard chain and mutation pipeline behind
// both command surfaces.
type Dispatcher struct {
	roster     RosterProvider
	caps       CapabilityProvider
	exec       *Executor
	format     *Formatter
	log        *logrus.Logger
	logActions bool
}

// NewDispatcher provides a dispatcher instance.
func NewDispatcher(
	roster RosterProvider,
	caps CapabilityProvider,
	exec *Executor,
	format *Formatter,
	log *logrus.Logger,
	logActions bool,
) *Dispatcher {
	return &Dispatcher{
		roster:     roster,
		caps:       caps,
		exec:       exec,
		format:     format,
		log:        log,
		logActions: logActions,
	}
}

// Bulk runs a bulk command for the caller's current voice channel.
func (d *Dispatcher) Bulk(cmd *Command, guildID, callerID string, resp Responder) {
	err := d.bulk(cmd, guildID, callerID, resp)
	if err != nil {
		d.log.WithError(err).WithFields(logrus.Fields{
			"command": cmd.BulkName,
			"guild":   guildID,
		}).Error("Command failed")

		_ = resp.Respond(d.format.OperationFailed(), true)
	}
}

// Single runs an individual-target command.
func (d *Dispatcher) Single(cmd *Command, guildID, callerID, targetID string, resp Responder) {
	err := d.single(cmd, guildID, callerID, targetID, resp)
	if err != nil {
		d.log.WithError(err).WithFields(logrus.Fields{
			"command": cmd.Name,
			"guild":   guildID,
		}).Error("Command failed")

		_ = resp.Respond(d.format.OperationFailed(), true)
	}
}

func (d *Dispatcher) bulk(cmd *Command, guildID, callerID string, resp Responder) error {
	channelID, err := d.roster.VoiceChannel(guildID, callerID)
	if err != nil {
		return err
	}

	if channelID == "" {
		return resp.Respond(d.format.Guard(GuardNoVoiceChannel), true)
	}

	guard, err := d.checkCapabilities(cmd, guildID, callerID)
	if err != nil {
		return err
	}

	if guard != nil {
		return resp.Respond(d.format.Guard(*guard), true)
	}

	roster, err := d.roster.Roster(guildID, channelID)
	if err != nil {
		return err
	}

	members := Select(roster, cmd.Target, AnyDiffering)
	if len(members) == 0 {
		return resp.Respond(d.format.BulkNoop(cmd), true)
	}

	out := d.exec.Execute(guildID, members, cmd.Target)

	err = resp.Respond(d.format.BulkSuccess(cmd, out.Succeeded), false)
	if err != nil {
		return err
	}

	d.audit(cmd.BulkName, guildID, channelID, callerID, out.Succeeded)

	return nil
}

func (d *Dispatcher) single(cmd *Command, guildID, callerID, targetID string, resp Responder) error {
	channelID, err := d.roster.VoiceChannel(guildID, callerID)
	if err != nil {
		return err
	}

	if channelID == "" {
		return resp.Respond(d.format.Guard(GuardNoVoiceChannel), true)
	}

	targetChannel, err := d.roster.VoiceChannel(guildID, targetID)
	if err != nil {
		return err
	}

	if targetChannel == "" || targetChannel != channelID {
		return resp.Respond(d.format.Guard(GuardTargetNotInChannel), true)
	}

	guard, err := d.checkCapabilities(cmd, guildID, callerID)
	if err != nil {
		return err
	}

	if guard != nil {
		return resp.Respond(d.format.Guard(*guard), true)
	}

	roster, err := d.roster.Roster(guildID, channelID)
	if err != nil {
		return err
	}

	target, ok := findMember(roster, targetID)
	if !ok {
		// left between the presence check and the roster read
		return resp.Respond(d.format.Guard(GuardTargetNotInChannel), true)
	}

	if cmd.Target.Matches(target) {
		return resp.Respond(d.format.SingleAlready(cmd, target), true)
	}

	out := d.exec.Execute(guildID, []Member{target}, cmd.Target)

	if len(out.Failures) > 0 {
		f := out.Failures[0]

		if f.Kind == FailurePermission {
			return resp.Respond(d.format.SingleForbidden(cmd, target), true)
		}

		return resp.Respond(d.format.OperationFailed(), true)
	}

	err = resp.Respond(d.format.SingleSuccess(cmd, target), false)
	if err != nil {
		return err
	}

	d.audit(cmd.Name, guildID, channelID, callerID, 1)

	return nil
}

// checkCapabilities runs the caller permission guard, then the bot
// permission guard. The caller check always comes first.
func (d *Dispatcher) checkCapabilities(cmd *Command, guildID, callerID string) (*GuardKind, error) {
	caller, err := d.caps.MemberCapability(guildID, callerID)
	if err != nil {
		return nil, err
	}

	if !caller.Covers(cmd.Need) {
		guard := GuardCallerPermission

		return &guard, nil
	}

	bot, err := d.caps.BotCapability(guildID)
	if err != nil {
		return nil, err
	}

	if !bot.Covers(cmd.Need) {
		guard := GuardBotPermission

		return &guard, nil
	}

	return nil, nil
}

func (d *Dispatcher) audit(command, guildID, channelID, callerID string, members int) {
	if !d.logActions {
		return
	}

	d.log.WithFields(logrus.Fields{
		"command": command,
		"guild":   guildID,
		"channel": channelID,
		"caller":  callerID,
		"members": members,
	}).Info("Voice states updated")
}

func findMember(roster []Member, userID string) (Member, bool) {
	for _, m := range roster {
		if m.ID == userID {
			return m, true
		}
	}

	return Member{}, false
}
