package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

type recordedCommand struct {
	name string
	args []string
}

// stubCommands replaces runCommand/lookPath for the duration of a test
func stubCommands(t *testing.T, fail map[string]bool, installed ...string) *[]recordedCommand {
	t.Helper()
	var calls []recordedCommand

	origRun, origLook := runCommand, lookPath
	t.Cleanup(func() {
		runCommand, lookPath = origRun, origLook
	})

	runCommand = func(name string, args ...string) error {
		calls = append(calls, recordedCommand{name: name, args: args})
		if fail[name] {
			return errors.New(name + " failed")
		}
		return nil
	}
	lookPath = func(file string) (string, error) {
		for _, fm := range installed {
			if fm == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("not found")
	}
	return &calls
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != DownloadsDirName {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFolder_NonExistentPath(t *testing.T) {
	calls := stubCommands(t, nil)
	missing := filepath.Join(t.TempDir(), "missing")

	err := OpenFolder(missing)
	if err == nil {
		t.Fatal("Expected error for non-existent path, got nil")
	}
	if !strings.Contains(err.Error(), "path does not exist") {
		t.Errorf("Unexpected error: %v", err)
	}
	if len(*calls) != 0 {
		t.Errorf("Expected no commands, got %v", *calls)
	}
}

func TestOpenFolder_EmptyPath(t *testing.T) {
	stubCommands(t, nil)

	if err := OpenFolder(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestOpenFolder_FileOpensParentDirectory(t *testing.T) {
	if runtime.GOOS != OSLinux && runtime.GOOS != OSDarwin && runtime.GOOS != OSWindows {
		t.Skipf("unsupported OS %s", runtime.GOOS)
	}
	calls := stubCommands(t, nil)

	dir := t.TempDir()
	file := filepath.Join(dir, "Lofi Beats [abc123].mp3")
	if err := os.WriteFile(file, []byte("id3"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := OpenFolder(file); err != nil {
		t.Fatalf("OpenFolder() error = %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("Expected 1 command, got %d", len(*calls))
	}

	got := (*calls)[0]
	wantDir, _ := filepath.Abs(dir)
	if got.args[len(got.args)-1] != wantDir {
		t.Errorf("Expected %s to open %s, got args %v", got.name, wantDir, got.args)
	}
}

func TestOpenFolder_LinuxFallsBackToFileManager(t *testing.T) {
	if runtime.GOOS != OSLinux {
		t.Skip("linux only")
	}
	calls := stubCommands(t, map[string]bool{XDGOpenCommand: true}, "thunar")

	dir := t.TempDir()
	if err := OpenFolder(dir); err != nil {
		t.Fatalf("OpenFolder() error = %v", err)
	}

	if len(*calls) != 2 {
		t.Fatalf("Expected xdg-open then thunar, got %v", *calls)
	}
	if (*calls)[0].name != XDGOpenCommand || (*calls)[1].name != "thunar" {
		t.Errorf("Unexpected command order: %v", *calls)
	}
}

func TestOpenFolder_LinuxNoFileManager(t *testing.T) {
	if runtime.GOOS != OSLinux {
		t.Skip("linux only")
	}
	stubCommands(t, map[string]bool{XDGOpenCommand: true})

	err := OpenFolder(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "no suitable file manager") {
		t.Errorf("Expected file manager error, got %v", err)
	}
}

func TestRevealFile(t *testing.T) {
	if runtime.GOOS != OSLinux && runtime.GOOS != OSDarwin && runtime.GOOS != OSWindows {
		t.Skipf("unsupported OS %s", runtime.GOOS)
	}
	calls := stubCommands(t, nil)

	dir := t.TempDir()
	file := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	absFile, _ := filepath.Abs(file)

	if err := RevealFile(file); err != nil {
		t.Fatalf("RevealFile() error = %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("Expected 1 command, got %v", *calls)
	}

	got := (*calls)[0]
	switch runtime.GOOS {
	case OSDarwin:
		if got.name != OpenCommand || got.args[0] != MacOSSelectFlag || got.args[1] != absFile {
			t.Errorf("Unexpected command: %v", got)
		}
	case OSWindows:
		if got.name != ExplorerCommand || got.args[0] != WindowsSelectParam+absFile {
			t.Errorf("Unexpected command: %v", got)
		}
	case OSLinux:
		if got.name != XDGOpenCommand || got.args[0] != filepath.Dir(absFile) {
			t.Errorf("Unexpected command: %v", got)
		}
	}
}
