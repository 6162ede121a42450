package bot

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Bot is a main implementation of bot
type Bot struct {
	Configuration
	m       *sync.RWMutex
	servers map[string]*server
}

type server struct {
	prefix string
}

func (bot *Bot) guild(guildID string) *server {
	bot.m.Lock()
	defer bot.m.Unlock()

	s, ok := bot.servers[guildID]
	if !ok {
		s = &server{}
		bot.servers[guildID] = s
	}

	return s
}

// configure resolves the command prefix for a guild: per-server
// override, then the global setting, then "!".
func (bot *Bot) configure(s *server, guildID string) {
	prefix := ""

	for _, srv := range bot.Config.Servers {
		if srv.GuildID == guildID {
			prefix = srv.Prefix
		}
	}

	if prefix == "" {
		prefix = bot.Config.BotSettings.Prefix
	}

	if prefix == "" {
		prefix = "!"
	}

	s.prefix = prefix
}

// Prefix returns the command prefix in effect for a guild
func (bot *Bot) Prefix(guildID string) string {
	s := bot.guild(guildID)

	bot.m.RLock()
	defer bot.m.RUnlock()

	if s.prefix == "" {
		return "!"
	}

	return s.prefix
}

// Serve starts bot serving loop and blocks until exit
func (bot *Bot) Serve() error {
	err := bot.Discord.Open()
	if err != nil {
		return err
	}

	bot.Log.Info("Running")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	for _, m := range bot.Modules {
		m.Shutdown(&bot.Configuration)
	}

	return bot.Discord.Close()
}
