package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	airella := newAirellaServer(t)

	var delivered atomic.Int32
	agh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("token") != "agh-secret" || r.FormValue("data") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		delivered.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(agh.Close)

	_, stderr, err := runBridge(t, binaryPath, home,
		"config", "init",
		"--airella-api-url", airella.URL,
		"--agh-api-url", agh.URL,
		"--agh-api-token", "agh-secret",
		"--email", "bridge@example.com",
		"--password", "hunter2",
		"--stations", "S1",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runBridge(t, binaryPath, home, "once")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "delivered: 1")
	assert.Equal(t, int32(1), delivered.Load())

	stdout, stderr, err = runBridge(t, binaryPath, home, "once", "--log-format", "json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "delivered: 1")
	assert.Contains(t, stderr, `"msg":"sent station data"`)
	assert.Equal(t, int32(2), delivered.Load(), "heartbeat ledger is not persisted between processes")
}

func TestSmokeVersion(t *testing.T) {
	binaryPath := buildBinary(t)

	stdout, stderr, err := runBridge(t, binaryPath, t.TempDir(), "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "dev\n", stdout)
}

func newAirellaServer(t *testing.T) *httptest.Server {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"data":{"accessToken":{"token":"access-1"},"refreshToken":{"token":"refresh-1"}}}`)
	}).Methods(http.MethodPost)
	router.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"data":{"accessToken":{"token":"access-2"}}}`)
	}).Methods(http.MethodPost)
	router.HandleFunc("/stations/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"data":{"address":{"country":"PL","city":"Krakow","street":"Rynek","number":"1"},"location":{"latitude":50.06,"longitude":19.94}}}`)
	}).Methods(http.MethodGet)
	router.HandleFunc("/stations/{id}/{series}/{kind}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"data":{"values":[{"timestamp":"2026-02-14T12:00:00Z","value":1}]}}`)
	}).Methods(http.MethodGet)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "airella-bridge-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/airella-bridge")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build airella-bridge binary: %s", string(output))
	return binaryPath
}

func runBridge(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

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
