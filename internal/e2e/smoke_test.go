package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newPlatform(t)

	_, stderr, err := runPChat(t, binaryPath, home,
		"login",
		"--server", server.URL,
		"--email", "neo@example.com",
		"--password", "secret",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runPChat(t, binaryPath, home, "agent", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "agent-1\tMika")

	stdout, stderr, err = runPChat(t, binaryPath, home, "send", "--agent", "agent-1", "hello")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Mika: hi!")
	assert.Contains(t, stdout, "[happy, favorability 60]")
}

func newPlatform(t *testing.T) *httptest.Server {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, value any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(value)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/session", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `"tok-e2e"`)
	})
	mux.HandleFunc("GET /agents", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []map[string]any{{"id": "agent-1", "name": "Mika", "emotion": "neutral", "favorability": 50}})
	})
	mux.HandleFunc("GET /agents/agent-1", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"id": "agent-1", "name": "Mika", "emotion": "neutral", "favorability": 50})
	})
	mux.HandleFunc("GET /agents/agent-1/conversations", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []map[string]any{{"id": "c-1", "title": "first"}})
	})
	mux.HandleFunc("GET /conversations/c-1/messages", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []any{})
	})
	mux.HandleFunc("POST /conversations/c-1/messages", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"content": "hi!", "name": "Mika", "emotion": "happy", "favorability": 60})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "pchat-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pchat")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build pchat binary: %s", string(output))
	return binaryPath
}

func runPChat(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "PASSWORD_STORE_DIR="+filepath.Join(home, ".password-store-absent"))

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
