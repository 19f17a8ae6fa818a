package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindConfig(t *testing.T) {
	// /tmp/
	//   project/ (launchdeck.yaml)
	//     web/
	//       src/
	//   empty/
	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "project")
	webDir := filepath.Join(projectDir, "web")
	srcDir := filepath.Join(webDir, "src")
	emptyDir := filepath.Join(baseDir, "empty")

	if err := os.MkdirAll(srcDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(emptyDir, 0755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(projectDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("server:\n  addr: 127.0.0.1:4000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// A directory with the config name must not match.
	if err := os.Mkdir(filepath.Join(webDir, ConfigFileName), 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		want      string
		wantErr   bool
	}{
		{"Start at Project", projectDir, configPath, false},
		{"Start Nested Deeply", srcDir, configPath, false},
		{"Skips Directory Named Like Config", webDir, configPath, false},
		{"No Config Found", emptyDir, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindConfig(tt.startPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if filepath.Clean(got) != filepath.Clean(tt.want) && got != tt.want {
				t.Errorf("FindConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	tempRoot := os.TempDir()
	inTemp := filepath.Join(tempRoot, "already-here")

	tests := []struct {
		name      string
		path      string
		forceTemp bool
		want      string
	}{
		{"Real Path", "./data", false, "./data"},
		{"Empty Real Path", "", false, "."},
		{"Sandboxed", "./data", true, filepath.Join(tempRoot, "launchdeck-dev", "data")},
		{"Sandboxed Empty", "", true, filepath.Join(tempRoot, "launchdeck-dev", "default")},
		{"Already In Temp", inTemp, true, inTemp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDataDir(tt.path, tt.forceTemp); got != tt.want {
				t.Errorf("ResolveDataDir(%q, %v) = %q, want %q", tt.path, tt.forceTemp, got, tt.want)
			}
		})
	}
}

func TestIsDevRun(t *testing.T) {
	// Test binaries are built by `go test`.
	if !IsDevRun() {
		t.Error("IsDevRun() = false under go test")
	}
}
