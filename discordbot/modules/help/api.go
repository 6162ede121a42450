// Package help provides bot module for command help message
package help

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/aveline/vcwarden/discordbot/bot"
	"github.com/aveline/vcwarden/discordbot/modules/voice"
	"github.com/aveline/vcwarden/discordbot/router"
)

// New provides module instance
func New() bot.Module {
	return &module{}
}

type module struct {
	config *bot.Configuration
}

func (mod *module) Initialize(config *bot.Configuration) error {
	mod.config = config

	group := config.Router.Group("help").SetDescription("help & status")

	group.On("help", "prints help", mod.commandHelp)

	return nil
}

func (mod *module) Configure(*bot.Configuration, *discordgo.Guild) {
}

func (mod *module) Shutdown(*bot.Configuration) {
}

func (mod *module) commandHelp(ctx *router.Context) error {
	max := 0

	for _, g := range ctx.Route.Router.Groups {
		for _, v := range g.Routes {
			if len(v.Name) > max {
				max = len(v.Name)
			}
		}
	}

	buf := &strings.Builder{}

	buf.WriteString("```autohotkey\n")

	for _, g := range ctx.Route.Router.Groups {
		_, _ = buf.WriteString("\n==" + strings.ToUpper(g.Name) + "==")

		if len(g.Description) > 0 {
			_, _ = buf.WriteString(" ")
			_, _ = buf.WriteString(g.Description)
		}

		_, _ = buf.WriteString("\n")

		for _, v := range g.Routes {
			_, _ = buf.WriteString(strings.Repeat(" ", max-len(v.Name)))
			_, _ = buf.WriteString(v.Name)
			_, _ = buf.WriteString(": ")
			_, _ = buf.WriteString(v.Description)
			buf.WriteString("\n")
		}
	}

	buf.WriteString("```")

	return ctx.ReplyEmbed(buf.String())
}

// Commands implements bot.InteractionModule.
func (mod *module) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "help",
			Description: "Show all available commands",
		},
	}
}

// HandleInteraction implements bot.InteractionModule.
func (mod *module) HandleInteraction(
	conf *bot.Configuration,
	session *discordgo.Session,
	event *discordgo.InteractionCreate,
) bool {
	if event.Type != discordgo.InteractionApplicationCommand {
		return false
	}

	if event.ApplicationCommandData().Name != "help" {
		return false
	}

	err := session.InteractionRespond(event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{mod.embed(conf)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		conf.Log.WithError(err).Error("Responding to help")
	}

	return true
}

func (mod *module) embed(conf *bot.Configuration) *discordgo.MessageEmbed {
	bulk := &strings.Builder{}
	single := &strings.Builder{}

	for _, cmd := range voice.Table {
		bulk.WriteString("`/")
		bulk.WriteString(cmd.BulkName)
		bulk.WriteString("` - ")
		bulk.WriteString(cmd.Phrase)
		bulk.WriteString(" all members in your voice channel\n")

		single.WriteString("`/")
		single.WriteString(cmd.Name)
		single.WriteString("` - ")
		single.WriteString(cmd.Phrase)
		single.WriteString(" a specific user\n")
	}

	description := conf.Config.BotSettings.Description
	if description == "" {
		description = "Voice channel moderation commands"
	}

	return &discordgo.MessageEmbed{
		Title:       "Voice Commands",
		Description: description,
		Color:       0x5865f2,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Primary Commands",
				Value: bulk.String(),
			},
			{
				Name:  "Individual Commands",
				Value: single.String(),
			},
			{
				Name: "Requirements",
				Value: "You must be in a voice channel. " +
					"Both you and the bot need the Mute Members / Deafen Members permissions.",
			},
		},
	}
}
