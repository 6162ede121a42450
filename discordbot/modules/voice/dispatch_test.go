package voice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRoster struct {
	channels map[string]string
	roster   []Member
}

func (f *fakeRoster) VoiceChannel(_, userID string) (string, error) {
	return f.channels[userID], nil
}

func (f *fakeRoster) Roster(_, _ string) ([]Member, error) {
	return f.roster, nil
}

type fakeCaps struct {
	caller Capability
	bot    Capability

	callerChecked bool
	botChecked    bool
}

func (f *fakeCaps) MemberCapability(_, _ string) (Capability, error) {
	f.callerChecked = true

	return f.caller, nil
}

func (f *fakeCaps) BotCapability(_ string) (Capability, error) {
	f.botChecked = true

	return f.bot, nil
}

type fakeResponder struct {
	content   string
	ephemeral bool
	count     int
}

func (f *fakeResponder) Respond(content string, ephemeral bool) error {
	f.content = content
	f.ephemeral = ephemeral
	f.count++

	return nil
}

func fullCaps() *fakeCaps {
	return &fakeCaps{
		caller: Capability{Mute: true, Deafen: true},
		bot:    Capability{Mute: true, Deafen: true},
	}
}

func newTestDispatcher(roster *fakeRoster, caps *fakeCaps, editor *fakeEditor) *Dispatcher {
	return NewDispatcher(
		roster,
		caps,
		NewExecutor(editor, testLog()),
		NewFormatter(nil),
		testLog(),
		false,
	)
}

func muteCmd(t *testing.T) *Command {
	t.Helper()

	cmd, bulk := Lookup("muteall")
	require.NotNil(t, cmd)
	require.True(t, bulk)

	return cmd
}

func TestBulkCallerNotInVoiceChannel(t *testing.T) {
	roster := &fakeRoster{channels: map[string]string{}}
	caps := fullCaps()
	editor := &fakeEditor{}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, caps, editor)
	d.Bulk(muteCmd(t), "g", "caller", resp)

	require.Equal(t, defaultMessages["no_voice_channel"], resp.content)
	require.True(t, resp.ephemeral)
	require.Empty(t, editor.calls)

	// presence guard fires before any permission lookup
	require.False(t, caps.callerChecked)
}

func TestBulkCallerPermissionBeforeBot(t *testing.T) {
	roster := &fakeRoster{
		channels: map[string]string{"caller": "vc"},
		roster:   []Member{{ID: "caller"}},
	}
	caps := &fakeCaps{bot: Capability{Mute: true, Deafen: true}}
	editor := &fakeEditor{}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, caps, editor)
	d.Bulk(muteCmd(t), "g", "caller", resp)

	require.Equal(t, defaultMessages["no_permission"], resp.content)
	require.True(t, resp.ephemeral)
	require.Empty(t, editor.calls)
}

func TestBulkBotPermission(t *testing.T) {
	roster := &fakeRoster{
		channels: map[string]string{"caller": "vc"},
		roster:   []Member{{ID: "caller"}},
	}
	caps := &fakeCaps{caller: Capability{Mute: true, Deafen: true}}
	editor := &fakeEditor{}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, caps, editor)
	d.Bulk(muteCmd(t), "g", "caller", resp)

	require.Equal(t, defaultMessages["bot_no_permission"], resp.content)
	require.True(t, resp.ephemeral)
	require.True(t, caps.callerChecked)
	require.Empty(t, editor.calls)
}

func TestBulkNoopWhenEveryoneMuted(t *testing.T) {
	roster := &fakeRoster{
		channels: map[string]string{"caller": "vc"},
		roster: []Member{
			{ID: "caller", Mute: true},
			{ID: "2", Mute: true},
		},
	}
	editor := &fakeEditor{}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, fullCaps(), editor)
	d.Bulk(muteCmd(t), "g", "caller", resp)

	cmd := muteCmd(t)
	require.Equal(t, cmd.defaultNoop, resp.content)
	require.True(t, resp.ephemeral)
	require.Empty(t, editor.calls)
}

func TestBulkSuccessCountsOnlyChanged(t *testing.T) {
	// caller A, member B, bot C: only A and B get edited
	roster := &fakeRoster{
		channels: map[string]string{"a": "vc"},
		roster: []Member{
			{ID: "a", DisplayName: "A"},
			{ID: "b", DisplayName: "B"},
			{ID: "c", DisplayName: "C", Bot: true},
		},
	}
	editor := &fakeEditor{}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, fullCaps(), editor)
	d.Bulk(muteCmd(t), "g", "a", resp)

	require.Len(t, editor.calls, 2)
	require.NotContains(t, editor.calls, "c")
	require.Contains(t, resp.content, "(2 members)")
	require.False(t, resp.ephemeral)
}

func TestBulkPartialFailureCount(t *testing.T) {
	roster := &fakeRoster{
		channels: map[string]string{"a": "vc"},
		roster: []Member{
			{ID: "a"}, {ID: "b"}, {ID: "c"},
		},
	}
	editor := &fakeEditor{
		fail: map[string]error{"b": permissionError()},
	}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, fullCaps(), editor)
	d.Bulk(muteCmd(t), "g", "a", resp)

	require.Contains(t, resp.content, "(2 members)")
}

func singleCmd(t *testing.T, name string) *Command {
	t.Helper()

	cmd, bulk := Lookup(name)
	require.NotNil(t, cmd)
	require.False(t, bulk)

	return cmd
}

func TestSingleTargetNotInChannel(t *testing.T) {
	roster := &fakeRoster{
		channels: map[string]string{
			"caller": "vc",
			"target": "other",
		},
	}
	caps := fullCaps()
	editor := &fakeEditor{}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, caps, editor)
	d.Single(singleCmd(t, "mute"), "g", "caller", "target", resp)

	require.Equal(t, defaultMessages["target_not_in_channel"], resp.content)
	require.True(t, resp.ephemeral)

	// target guard fires before any permission lookup
	require.False(t, caps.callerChecked)
	require.Empty(t, editor.calls)
}

func TestSingleAlreadyInState(t *testing.T) {
	roster := &fakeRoster{
		channels: map[string]string{
			"caller": "vc",
			"target": "vc",
		},
		roster: []Member{
			{ID: "caller"},
			{ID: "target", DisplayName: "Tara", Mute: true},
		},
	}
	editor := &fakeEditor{}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, fullCaps(), editor)
	d.Single(singleCmd(t, "mute"), "g", "caller", "target", resp)

	require.Equal(t, "❌ Tara is already muted!", resp.content)
	require.True(t, resp.ephemeral)
	require.Empty(t, editor.calls)
}

func TestSingleSuccess(t *testing.T) {
	roster := &fakeRoster{
		channels: map[string]string{
			"caller": "vc",
			"target": "vc",
		},
		roster: []Member{
			{ID: "caller"},
			{ID: "target", DisplayName: "Tara"},
		},
	}
	editor := &fakeEditor{}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, fullCaps(), editor)
	d.Single(singleCmd(t, "mute"), "g", "caller", "target", resp)

	require.Equal(t, emojiMuted+" Muted Tara", resp.content)
	require.False(t, resp.ephemeral)
	require.Equal(t, []string{"target"}, editor.calls)
}

func TestSingleForbidden(t *testing.T) {
	roster := &fakeRoster{
		channels: map[string]string{
			"caller": "vc",
			"target": "vc",
		},
		roster: []Member{
			{ID: "caller"},
			{ID: "target", DisplayName: "Tara"},
		},
	}
	editor := &fakeEditor{
		fail: map[string]error{"target": permissionError()},
	}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, fullCaps(), editor)
	d.Single(singleCmd(t, "mute"), "g", "caller", "target", resp)

	require.Equal(t, "❌ Cannot mute Tara - insufficient permissions!", resp.content)
	require.True(t, resp.ephemeral)
}

func TestSinglePairedCommandAlreadyNeedsBothDimensions(t *testing.T) {
	// muted but not deafened: mutedeafen still has work to do
	roster := &fakeRoster{
		channels: map[string]string{
			"caller": "vc",
			"target": "vc",
		},
		roster: []Member{
			{ID: "caller"},
			{ID: "target", DisplayName: "Tara", Mute: true},
		},
	}
	editor := &fakeEditor{}
	resp := &fakeResponder{}

	d := newTestDispatcher(roster, fullCaps(), editor)
	d.Single(singleCmd(t, "mutedeafen"), "g", "caller", "target", resp)

	require.Equal(t, []string{"target"}, editor.calls)
	require.False(t, resp.ephemeral)
}

func TestDeafenRequiresDeafenCapability(t *testing.T) {
	roster := &fakeRoster{
		channels: map[string]string{"caller": "vc"},
		roster:   []Member{{ID: "caller"}},
	}
	caps := &fakeCaps{
		caller: Capability{Mute: true},
		bot:    Capability{Mute: true, Deafen: true},
	}
	editor := &fakeEditor{}
	resp := &fakeResponder{}

	cmd, _ := Lookup("deafenall")

	d := newTestDispatcher(roster, caps, editor)
	d.Bulk(cmd, "g", "caller", resp)

	require.Equal(t, defaultMessages["no_permission"], resp.content)
	require.Empty(t, editor.calls)
}
