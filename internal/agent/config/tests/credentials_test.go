package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-webforge/internal/agent/config"
)

// Файла нет — пустая конфигурация без ошибки
func TestLoad_MissingFile_ReturnsEmptyCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Token != "" || c.Email != "" {
		t.Fatalf("expected empty credentials, got %+v", c)
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "credentials.json")

	want := &config.Credentials{Token: "token-1", Email: "test@example.com"}
	if err := config.Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Token != want.Token || got.Email != want.Email {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// Файл с токеном не должен быть читаем другими пользователями
func TestSave_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	if err := config.Save(path, &config.Credentials{Token: "token-1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected permissions 0600, got %o", perm)
	}
}

func TestLoad_BadJSON_ReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestDefaultPath_PointsToHomeDir(t *testing.T) {
	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(p, filepath.Join(".webforge", "credentials.json")) {
		t.Fatalf("unexpected path: %q", p)
	}
}
