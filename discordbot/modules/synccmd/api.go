// Package synccmd provides the administrator command to re-register
// slash commands for a guild.
package synccmd

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/aveline/vcwarden/discordbot/bot"
	"github.com/aveline/vcwarden/util/envfile"
)

const guildIDKey = "DISCORD_GUILD_ID"

// New provides module instance. envPath is the dotenv file the chosen
// guild id is persisted to for the next startup.
func New(envPath string) bot.Module {
	return &module{envPath: envPath}
}

type module struct {
	envPath string
}

func (mod *module) Initialize(*bot.Configuration) error {
	return nil
}

func (mod *module) Configure(*bot.Configuration, *discordgo.Guild) {
}

func (mod *module) Shutdown(*bot.Configuration) {
}

// Commands implements bot.InteractionModule.
func (mod *module) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "sync_commands",
			Description: "Re-register slash commands for this guild",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "guild_id",
					Description: "Guild to sync, defaults to the current one",
				},
			},
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

	data := event.ApplicationCommandData()
	if data.Name != "sync_commands" {
		return false
	}

	respond := func(content string) {
		err := session.InteractionRespond(event.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err != nil {
			conf.Log.WithError(err).Error("Responding to sync_commands")
		}
	}

	if event.Member == nil || event.Member.Permissions&discordgo.PermissionAdministrator == 0 {
		respond("❌ You must be an administrator to use this command")

		return true
	}

	guildID := event.GuildID

	for _, opt := range data.Options {
		if opt.Name == "guild_id" {
			guildID = opt.StringValue()
		}
	}

	count, err := conf.SyncCommands(guildID)
	if err != nil {
		conf.Log.WithError(err).WithField("guild", guildID).Error("Syncing commands")
		respond("❌ Failed to sync commands")

		return true
	}

	err = envfile.Persist(mod.envPath, guildIDKey, guildID)
	if err != nil {
		conf.Log.WithError(err).Error("Persisting guild id")
	}

	respond(fmt.Sprintf("✅ Synced %d commands to guild %s", count, guildID))

	return true
}
