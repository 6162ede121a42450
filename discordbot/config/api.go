// Package config with configuration models and utilities
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/imdario/mergo"
	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

// Default returns the built-in configuration used when no file is
// present. Message text matches the formatter's own defaults so a
// written-out default config round-trips to identical behavior.
func Default() *Root {
	return &Root{
		BotSettings: Settings{
			Prefix:       "!",
			Description:  "Voice channel moderation bot",
			ActivityType: "listening",
			ActivityName: "voice channels",
		},
		Messages: map[string]string{
			"no_voice_channel":      "❌ You must be in a voice channel to use this command",
			"target_not_in_channel": "❌ The specified user is not in your voice channel!",
			"no_permission":         "❌ You don't have permission to mute/unmute members",
			"bot_no_permission":     "❌ Bot doesn't have permission to mute/unmute members",
			"error_occurred":        "❌ An error occurred while processing the command",
		},
	}
}

// Read reads configuration, fills omitted fields from Default and
// validates the result
func Read(reader io.Reader) (root *Root, err error) {
	root = &Root{}

	err = yaml.NewDecoder(reader).Decode(root)
	if err != nil && err != io.EOF {
		return nil, err
	}

	err = mergo.Merge(root, Default())
	if err != nil {
		return nil, err
	}

	err = validator.New().Struct(root)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return root, nil
}

// Load reads the configuration file at path, falling back to Default
// when the file is missing or malformed
func Load(path string, log *logrus.Logger) *Root {
	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("Config file not loaded, using defaults")

		return Default()
	}

	defer func() {
		_ = f.Close()
	}()

	root, err := Read(f)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("Config file malformed, using defaults")

		return Default()
	}

	return root
}

// Write writes configuration
func Write(writer io.Writer, root *Root) (err error) {
	err = yaml.NewEncoder(writer).Encode(root)

	return
}
