package voice

import (
	"github.com/bwmarrin/discordgo"

	"github.com/aveline/vcwarden/discordbot/bot"
	"github.com/aveline/vcwarden/discordbot/router"
)

// messageResponder delivers replies on the prefix surface. Text
// channels have no caller-only replies, so the ephemeral flag is
// ignored.
type messageResponder struct {
	ctx *router.Context
}

func (r *messageResponder) Respond(content string, _ bool) error {
	_, err := r.ctx.Reply(content)

	return err
}

// interactionResponder delivers replies on the slash command surface.
type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

func (r *interactionResponder) Respond(content string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Content: content,
	}

	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// Commands implements bot.InteractionModule.
func (mod *module) Commands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand

	for _, cmd := range Table {
		commands = append(commands,
			&discordgo.ApplicationCommand{
				Name:        cmd.BulkName,
				Description: bulkDescription(cmd),
			},
			&discordgo.ApplicationCommand{
				Name:        cmd.Name,
				Description: singleDescription(cmd),
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "The user to " + cmd.Name,
						Required:    true,
					},
				},
			},
		)
	}

	return commands
}

// HandleInteraction implements bot.InteractionModule.
func (mod *module) HandleInteraction(
	_ *bot.Configuration,
	session *discordgo.Session,
	event *discordgo.InteractionCreate,
) bool {
	if event.Type != discordgo.InteractionApplicationCommand {
		return false
	}

	data := event.ApplicationCommandData()

	cmd, bulk := Lookup(data.Name)
	if cmd == nil {
		return false
	}

	resp := &interactionResponder{
		session:     session,
		interaction: event.Interaction,
	}

	// Member is nil for direct message invocations, which by
	// definition have no voice channel either.
	if event.Member == nil || event.Member.User == nil {
		_ = resp.Respond(mod.dispatcher.format.Guard(GuardNoVoiceChannel), true)

		return true
	}

	callerID := event.Member.User.ID

	if bulk {
		mod.dispatcher.Bulk(cmd, event.GuildID, callerID, resp)

		return true
	}

	targetID := interactionTarget(data)
	if targetID == "" {
		_ = resp.Respond(mod.dispatcher.format.OperationFailed(), true)

		return true
	}

	mod.dispatcher.Single(cmd, event.GuildID, callerID, targetID, resp)

	return true
}

func interactionTarget(data discordgo.ApplicationCommandInteractionData) string {
	for _, opt := range data.Options {
		if opt.Name == "user" && opt.Type == discordgo.ApplicationCommandOptionUser {
			return opt.UserValue(nil).ID
		}
	}

	return ""
}
