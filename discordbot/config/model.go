package config

// Settings holds bot-wide behavior knobs
type Settings struct {
	Prefix       string `yaml:"prefix" validate:"required"`
	Description  string `yaml:"description"`
	ActivityType string `yaml:"activity_type"`
	ActivityName string `yaml:"activity_name"`
}

// Features toggles optional behavior
type Features struct {
	LogActions bool `yaml:"log_actions"`
}

// Server specific part of configuration
type Server struct {
	GuildID string `yaml:"id"`
	Prefix  string `yaml:"prefix"`
}

// Root of configuration
type Root struct {
	BotSettings Settings          `yaml:"bot_settings"`
	Messages    map[string]string `yaml:"messages"`
	Features    Features          `yaml:"features"`
	Servers     []Server          `yaml:"servers"`
}
