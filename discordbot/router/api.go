// Package router provides the prefix command router.
package router

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Args provide abstraction for getting arguments
type Args []string

// Get returns bound-safe argument by index
func (args Args) Get(i int) string {
	if len(args) <= i {
		return ""
	}

	return args[i]
}

// Join joins arguments starting with given index
func (args Args) Join(i int) string {
	if len(args) <= i {
		return ""
	}

	return strings.Join(args[i:], " ")
}

// MiddlewareFunc implements command wrapping
type MiddlewareFunc func(handler HandlerFunc) HandlerFunc

// HandlerFunc implements command execution
type HandlerFunc func(ctx *Context) error

// Context simplifies request handling
type Context struct {
	Session *discordgo.Session
	Message *discordgo.Message
	Route   *Route
	Args    Args
}

// Reply replies in the channel the command came from
func (ctx *Context) Reply(desc string) (msg *discordgo.Message, err error) {
	return ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, desc)
}

// ReplyEmbed replies with a plain description embed
func (ctx *Context) ReplyEmbed(desc string) (err error) {
	_, err = ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, &discordgo.MessageEmbed{
		Description: desc,
	})

	return
}

// ReplyEmbedCustom replies with a caller-built embed
func (ctx *Context) ReplyEmbedCustom(embed *discordgo.MessageEmbed) (err error) {
	_, err = ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, embed)

	return
}

// Route describes command route
type Route struct {
	Router      *Router
	Name        string
	Description string
	Handler     HandlerFunc
	Baked       HandlerFunc
	Middleware  []MiddlewareFunc
	Group       *Group
}

// Group groups a number of routes for help listings and shared
// middleware
type Group struct {
	Name        string
	Description string
	Routes      []*Route
	Middleware  []MiddlewareFunc
	Router      *Router
}

// SetDescription sets the group help description
func (group *Group) SetDescription(desc string) *Group {
	group.Description = desc

	return group
}

// On adds a route to the group
func (group *Group) On(name, desc string, handler HandlerFunc) (route *Route) {
	route = &Route{
		Router:      group.Router,
		Name:        name,
		Description: desc,
		Handler:     handler,
		Group:       group,
	}

	group.Router.routes[name] = route
	group.Routes = append(group.Routes, route)

	return
}

// NewRouter returns new router instance
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]*Route),
	}
}
