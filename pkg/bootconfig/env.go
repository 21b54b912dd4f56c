package bootconfig

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DotenvLookup returns a lookup for ApplyEnv that prefers non-empty process
// environment values and falls back to the values read from the dotenv files.
// Missing files are an error.
func DotenvLookup(paths ...string) (func(string) (string, bool), error) {
	values := map[string]string{}
	if len(paths) > 0 {
		read, err := godotenv.Read(paths...)
		if err != nil {
			return nil, fmt.Errorf("bootconfig: read env files: %w", err)
		}
		values = read
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}
