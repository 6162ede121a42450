// Package bot provides main bot implementation
package bot

import (
	"sync"

	"github.com/aveline/vcwarden/discordbot/config"
	"github.com/aveline/vcwarden/discordbot/router"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Options provide configuration options for bot
type Options struct {
	Discord *discordgo.Session
	Config  *config.Root
	Env     *config.Env
	Log     *logrus.Logger
	Modules []Module
}

// Configuration store configuration for bot
type Configuration struct {
	Discord *discordgo.Session
	Config  *config.Root
	Env     *config.Env
	Log     *logrus.Logger
	Router  *router.Router
	Modules []Module
	bot     *Bot
}

// Module interface incapsulates methods for distinct functionality
type Module interface {
	Initialize(bot *Configuration) error
	Configure(bot *Configuration, server *discordgo.Guild)
	Shutdown(bot *Configuration)
}

// InteractionModule marks modules exposing slash commands
type InteractionModule interface {
	Commands() []*discordgo.ApplicationCommand
	HandleInteraction(conf *Configuration, session *discordgo.Session, event *discordgo.InteractionCreate) bool
}

// SyncCommands overwrites the slash command set for guildID, or
// globally when guildID is empty. Returns the number of commands
// registered.
func (conf *Configuration) SyncCommands(guildID string) (int, error) {
	var commands []*discordgo.ApplicationCommand

	for _, m := range conf.Modules {
		im, ok := m.(InteractionModule)
		if !ok {
			continue
		}

		commands = append(commands, im.Commands()...)
	}

	_, err := conf.Discord.ApplicationCommandBulkOverwrite(conf.Discord.State.User.ID, guildID, commands)
	if err != nil {
		return 0, err
	}

	return len(commands), nil
}

// NewBot provides new instance of bot
func NewBot(options Options) (*Bot, error) {
	if options.Log == nil {
		options.Log = logrus.New()
	}

	bot := &Bot{
		Configuration: Configuration{
			Discord: options.Discord,
			Config:  options.Config,
			Env:     options.Env,
			Log:     options.Log,
			Router:  router.NewRouter(),
			Modules: options.Modules,
		},
		m:       &sync.RWMutex{},
		servers: make(map[string]*server),
	}

	bot.Configuration.bot = bot

	for _, m := range bot.Modules {
		err := m.Initialize(&bot.Configuration)
		if err != nil {
			return nil, err
		}
	}

	bot.Discord.AddHandler(bot.handlerReady)
	bot.Discord.AddHandler(bot.handlerGuildCreate)
	bot.Discord.AddHandler(bot.handlerMessageCreate)
	bot.Discord.AddHandler(bot.handlerInteractionCreate)

	return bot, nil
}
