// Package envfile persists individual values back to a dotenv file.
package envfile

import (
	"github.com/joho/godotenv"
)

// Persist writes key=value into the dotenv file at path, creating the
// file if needed and preserving the other entries.
func Persist(path, key, value string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		env = map[string]string{}
	}

	env[key] = value

	return godotenv.Write(env, path)
}
