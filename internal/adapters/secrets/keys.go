// Package secrets holds what the secret store backends share.
package secrets

import (
	"fmt"
	"path"
	"strings"
)

// EntryPath maps a secret key such as "pchat://work/session_token" to the
// slash separated entry name backends store it under ("pchat/work/session_token").
func EntryPath(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", fmt.Errorf("secret key is empty")
	}

	if scheme, rest, ok := strings.Cut(trimmed, "://"); ok {
		trimmed = scheme + "/" + rest
	}

	cleaned := path.Clean(trimmed)
	if strings.HasPrefix(cleaned, "/") || cleaned == ".." || strings.HasPrefix(cleaned, "../") || cleaned == "." {
		return "", fmt.Errorf("invalid secret key %q", key)
	}

	return cleaned, nil
}
