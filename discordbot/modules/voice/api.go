// Package voice provides mute/deafen moderation commands for voice
// channels, on both the prefix and the slash command surfaces.
package voice

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/aveline/vcwarden/discordbot/bot"
	"github.com/aveline/vcwarden/discordbot/router"
)

// New provides module instance
func New() bot.Module {
	return &module{}
}

type module struct {
	config     *bot.Configuration
	dispatcher *Dispatcher
}

func (mod *module) Initialize(config *bot.Configuration) error {
	mod.config = config

	provider := newSessionProvider(config.Discord, config.Log)
	exec := NewExecutor(provider, config.Log)
	format := NewFormatter(config.Config.Messages)

	mod.dispatcher = NewDispatcher(
		provider,
		provider,
		exec,
		format,
		config.Log,
		config.Config.Features.LogActions,
	)

	group := config.Router.Group("voice").SetDescription("voice moderation")

	for _, cmd := range Table {
		cmd := cmd

		group.On(cmd.BulkName, bulkDescription(cmd), mod.bulkCommand(cmd))
		group.On(cmd.Name, singleDescription(cmd), mod.singleCommand(cmd))
	}

	return nil
}

func (mod *module) Configure(*bot.Configuration, *discordgo.Guild) {
}

func (mod *module) Shutdown(*bot.Configuration) {
}

func bulkDescription(cmd *Command) string {
	return cmd.Phrase + " all members in your voice channel"
}

func singleDescription(cmd *Command) string {
	return cmd.Phrase + " a specific user in your voice channel"
}

func (mod *module) bulkCommand(cmd *Command) router.HandlerFunc {
	return func(ctx *router.Context) error {
		mod.dispatcher.Bulk(cmd, ctx.Message.GuildID, ctx.Message.Author.ID, &messageResponder{ctx: ctx})

		return nil
	}
}

func (mod *module) singleCommand(cmd *Command) router.HandlerFunc {
	return func(ctx *router.Context) error {
		targetID := messageTarget(ctx)

		resp := &messageResponder{ctx: ctx}

		if targetID == "" {
			return resp.Respond(mod.dispatcher.format.OperationFailed(), true)
		}

		mod.dispatcher.Single(cmd, ctx.Message.GuildID, ctx.Message.Author.ID, targetID, resp)

		return nil
	}
}

// messageTarget extracts the target user id from a prefix command:
// a mention if present, otherwise a raw id argument.
func messageTarget(ctx *router.Context) string {
	if len(ctx.Message.Mentions) > 0 {
		return ctx.Message.Mentions[0].ID
	}

	return strings.Trim(ctx.Args.Get(1), "<@!>")
}
