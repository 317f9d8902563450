// Package helpers contains few helper functions which are used throughout the project.
package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ProjectUserPath returns the directory in which lyricount keeps its per-user
// files such as the configuration and the cache database.
func ProjectUserPath() (string, error) {
	base, err := userBaseDir()
	if err != nil {
		return "", fmt.Errorf("finding user directory: %w", err)
	}

	return filepath.Join(base, UserDir), nil
}

// SafeFileName converts name into something which could be used as a file name on
// every supported OS. Runs of unsafe characters are replaced with a single
// underscore. An empty string is returned as "unnamed".
func SafeFileName(name string) string {
	var (
		out        strings.Builder
		lastUnsafe bool
	)

	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.' {
			out.WriteRune(r)
			lastUnsafe = false
			continue
		}

		if !lastUnsafe {
			out.WriteRune('_')
		}
		lastUnsafe = true
	}

	safe := strings.Trim(out.String(), "._")
	if safe == "" {
		return "unnamed"
	}
	return safe
}

func userBaseDir() (string, error) {
	if home := os.Getenv(homeEnv); home != "" {
		return home, nil
	}
	return os.UserHomeDir()
}
