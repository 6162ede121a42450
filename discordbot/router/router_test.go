package router

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func message(authorID, content string) *discordgo.Message {
	return &discordgo.Message{
		Author:  &discordgo.User{ID: authorID},
		Content: content,
	}
}

func TestDispatchMatchesRoute(t *testing.T) {
	r := NewRouter()

	var got Args

	r.On("test", "cmd", "desc", func(ctx *Context) error {
		got = ctx.Args

		return nil
	})

	err := r.Dispatch(nil, "!", "bot", message("user", "!cmd one two"))

	require.NoError(t, err)
	require.Equal(t, Args{"cmd", "one", "two"}, got)
}

func TestDispatchUnknownCommand(t *testing.T) {
	r := NewRouter()

	r.On("test", "cmd", "desc", func(*Context) error { return nil })

	err := r.Dispatch(nil, "!", "bot", message("user", "!other"))

	require.ErrorIs(t, err, ErrNotMatched)
}

func TestDispatchWrongPrefix(t *testing.T) {
	r := NewRouter()

	called := false

	r.On("test", "cmd", "desc", func(*Context) error {
		called = true

		return nil
	})

	err := r.Dispatch(nil, "!", "bot", message("user", "?cmd"))

	require.ErrorIs(t, err, ErrNotMatched)
	require.False(t, called)
}

func TestDispatchIgnoresOwnMessages(t *testing.T) {
	r := NewRouter()

	called := false

	r.On("test", "cmd", "desc", func(*Context) error {
		called = true

		return nil
	})

	err := r.Dispatch(nil, "!", "bot", message("bot", "!cmd"))

	require.NoError(t, err)
	require.False(t, called)
}

func TestMiddlewareOrder(t *testing.T) {
	r := NewRouter()

	var order []string

	wrap := func(name string) MiddlewareFunc {
		return func(next HandlerFunc) HandlerFunc {
			return func(ctx *Context) error {
				order = append(order, name)

				return next(ctx)
			}
		}
	}

	r.AppendMiddleware(wrap("router"))

	group := r.Group("test")
	group.Middleware = append(group.Middleware, wrap("group"))

	route := group.On("cmd", "desc", func(*Context) error {
		order = append(order, "handler")

		return nil
	})
	route.Middleware = append(route.Middleware, wrap("route"))

	err := r.Dispatch(nil, "!", "bot", message("user", "!cmd"))

	require.NoError(t, err)
	require.Equal(t, []string{"router", "group", "route", "handler"}, order)
}

func TestGroupsKeepInsertionOrder(t *testing.T) {
	r := NewRouter()

	r.Group("zeta")
	r.Group("alpha")
	r.Group("zeta")

	require.Len(t, r.Groups, 2)
	require.Equal(t, "zeta", r.Groups[0].Name)
	require.Equal(t, "alpha", r.Groups[1].Name)
}

func TestArgsGetBoundSafe(t *testing.T) {
	args := Args{"a", "b"}

	require.Equal(t, "b", args.Get(1))
	require.Equal(t, "", args.Get(5))
	require.Equal(t, "", args.Join(5))
	require.Equal(t, "a b", args.Join(0))
}

func TestDispatchQuotedArguments(t *testing.T) {
	r := NewRouter()

	var got Args

	r.On("test", "cmd", "desc", func(ctx *Context) error {
		got = ctx.Args

		return nil
	})

	err := r.Dispatch(nil, "!", "bot", message("user", `!cmd "two words" three`))

	require.NoError(t, err)
	require.Equal(t, Args{"cmd", "two words", "three"}, got)
}
