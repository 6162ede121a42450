package router

import (
	"encoding/csv"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ErrNotMatched is returned when an unknown command is issued
var ErrNotMatched = errors.New("command not matched")

// Router implements routing dispatch
type Router struct {
	routes     map[string]*Route
	Groups     []*Group
	Middleware []MiddlewareFunc
}

// Group returns the group with given name, creating it on first use.
// Groups keep insertion order so help output is stable.
func (router *Router) Group(name string) *Group {
	for _, g := range router.Groups {
		if g.Name == name {
			return g
		}
	}

	g := &Group{
		Name:   name,
		Router: router,
	}

	router.Groups = append(router.Groups, g)

	return g
}

// On creates a new route in the given group
func (router *Router) On(group, name, desc string, handler HandlerFunc) (route *Route) {
	return router.Group(group).On(name, desc, handler)
}

// AppendMiddleware appends middleware to the end of the chain
func (router *Router) AppendMiddleware(middleware MiddlewareFunc) {
	router.Middleware = append(router.Middleware, middleware)
}

// Dispatch tries to find a matching route and execute it
func (router *Router) Dispatch(
	session *discordgo.Session,
	prefix, userID string,
	msg *discordgo.Message,
) (err error) {
	if msg.Author == nil || msg.Author.ID == userID {
		return nil
	}

	raw := msg.Content
	if !strings.HasPrefix(raw, prefix) {
		return ErrNotMatched
	}

	raw = strings.TrimPrefix(raw, prefix)

	reader := csv.NewReader(strings.NewReader(raw))
	reader.Comma = ' '
	reader.TrimLeadingSpace = true

	args, err := reader.Read()
	if err != nil {
		return ErrNotMatched
	}

	if len(args) == 0 {
		return ErrNotMatched
	}

	route, ok := router.routes[args[0]]
	if !ok {
		return ErrNotMatched
	}

	if route.Baked == nil {
		var middlewares []MiddlewareFunc

		middlewares = append(middlewares, router.Middleware...)
		middlewares = append(middlewares, route.Group.Middleware...)
		middlewares = append(middlewares, route.Middleware...)

		route.Baked = route.Handler
		for i := len(middlewares) - 1; i >= 0; i-- {
			route.Baked = middlewares[i](route.Baked)
		}
	}

	return route.Baked(&Context{
		Session: session,
		Message: msg,
		Route:   route,
		Args:    args,
	})
}
