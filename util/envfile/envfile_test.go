package envfile

import (
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func TestPersistCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	err := Persist(path, "DISCORD_GUILD_ID", "123")
	require.NoError(t, err)

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	require.Equal(t, "123", env["DISCORD_GUILD_ID"])
}

func TestPersistKeepsOtherEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	err := godotenv.Write(map[string]string{
		"DISCORD_BOT_TOKEN": "secret",
		"DISCORD_GUILD_ID":  "old",
	}, path)
	require.NoError(t, err)

	err = Persist(path, "DISCORD_GUILD_ID", "new")
	require.NoError(t, err)

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	require.Equal(t, "secret", env["DISCORD_BOT_TOKEN"])
	require.Equal(t, "new", env["DISCORD_GUILD_ID"])
}
