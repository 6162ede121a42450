package config

import (
	"github.com/caarlos0/env/v11"
)

// Env holds the process environment part of configuration. The bot
// token never lives in the yaml file.
type Env struct {
	Token   string `env:"DISCORD_BOT_TOKEN"`
	GuildID string `env:"DISCORD_GUILD_ID"`
}

// ReadEnv parses configuration from process environment
func ReadEnv() (*Env, error) {
	e := &Env{}

	err := env.Parse(e)
	if err != nil {
		return nil, err
	}

	return e, nil
}
