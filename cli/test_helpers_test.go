package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func writeTestConfig(t *testing.T, templateDir string) string {
	t.Helper()
	t.Setenv("SESSION_MANAGER_PORT", "")
	t.Setenv("SESSION_MANAGER_TEMPLATE_DIR", "")

	configPath := filepath.Join(t.TempDir(), "session.config.yml")
	content := "templateDir: " + templateDir + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}
