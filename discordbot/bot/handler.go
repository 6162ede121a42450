package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/aveline/vcwarden/discordbot/router"
)

func (bot *Bot) handlerReady(session *discordgo.Session, _ *discordgo.Ready) {
	bot.updatePresence(session)

	count, err := bot.SyncCommands("")
	if err != nil {
		bot.Log.WithError(err).Error("Syncing global commands")
	} else {
		bot.Log.WithField("count", count).Info("Synced global commands")
	}

	if bot.Env.GuildID != "" {
		count, err = bot.SyncCommands(bot.Env.GuildID)
		if err != nil {
			bot.Log.WithError(err).WithField("guild", bot.Env.GuildID).Error("Syncing guild commands")
		} else {
			bot.Log.WithFields(logrus.Fields{
				"count": count,
				"guild": bot.Env.GuildID,
			}).Info("Synced guild commands")
		}
	}
}

func (bot *Bot) updatePresence(session *discordgo.Session) {
	name := bot.Config.BotSettings.ActivityName
	if name == "" {
		return
	}

	var atype discordgo.ActivityType

	switch bot.Config.BotSettings.ActivityType {
	case "playing":
		atype = discordgo.ActivityTypeGame
	case "listening":
		atype = discordgo.ActivityTypeListening
	case "watching":
		atype = discordgo.ActivityTypeWatching
	case "competing":
		atype = discordgo.ActivityTypeCompeting
	default:
		atype = discordgo.ActivityTypeListening
	}

	err := session.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{
			{
				Name: name,
				Type: atype,
			},
		},
	})
	if err != nil {
		bot.Log.WithError(err).Error("Updating presence")
	}
}

func (bot *Bot) handlerGuildCreate(_ *discordgo.Session, guildCreate *discordgo.GuildCreate) {
	s := bot.guild(guildCreate.ID)

	bot.m.Lock()
	bot.configure(s, guildCreate.ID)
	bot.m.Unlock()

	for _, m := range bot.Modules {
		m.Configure(&bot.Configuration, guildCreate.Guild)
	}
}

func (bot *Bot) handlerMessageCreate(session *discordgo.Session, messageCreate *discordgo.MessageCreate) {
	prefix := bot.Prefix(messageCreate.GuildID)

	err := bot.Router.Dispatch(session, prefix, session.State.User.ID, messageCreate.Message)
	if err != nil && err != router.ErrNotMatched {
		bot.Log.WithError(err).Error("Dispatching command")
	}
}

func (bot *Bot) handlerInteractionCreate(session *discordgo.Session, event *discordgo.InteractionCreate) {
	for _, m := range bot.Modules {
		im, ok := m.(InteractionModule)
		if !ok {
			continue
		}

		if im.HandleInteraction(&bot.Configuration, session, event) {
			return
		}
	}
}
