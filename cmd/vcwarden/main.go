package main

import (
	"os"

	"github.com/bwmarrin/discordgo"
	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/aveline/vcwarden/discordbot/bot"
	"github.com/aveline/vcwarden/discordbot/config"
	"github.com/aveline/vcwarden/discordbot/modules/help"
	"github.com/aveline/vcwarden/discordbot/modules/synccmd"
	"github.com/aveline/vcwarden/discordbot/modules/voice"
)

type options struct {
	Config  string `short:"c" long:"config" default:"config/bot_config.yml" description:"Configuration file"`
	EnvFile string `short:"e" long:"env-file" default:".env" description:"Dotenv file"`
}

func main() {
	log := logrus.New()

	var opts options

	_, err := flags.Parse(&opts)
	if err != nil {
		os.Exit(1)
	}

	err = godotenv.Load(opts.EnvFile)
	if err != nil {
		log.WithField("path", opts.EnvFile).Info("No dotenv file, using process environment")
	}

	env, err := config.ReadEnv()
	if err != nil {
		log.Fatal(err)
	}

	if env.Token == "" {
		log.Fatal("DISCORD_BOT_TOKEN is not set")
	}

	configRoot := config.Load(opts.Config, log)

	dg, err := discordgo.New("Bot " + env.Token)
	if err != nil {
		log.Fatal(err)
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentMessageContent

	b, err := bot.NewBot(bot.Options{
		Discord: dg,
		Config:  configRoot,
		Env:     env,
		Log:     log,
		Modules: []bot.Module{
			voice.New(),
			help.New(),
			synccmd.New(opts.EnvFile),
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	err = b.Serve()
	if err != nil {
		log.Fatal(err)
	}
}
