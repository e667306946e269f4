// ABOUTME: Tests for config loading, env overrides, and credential storage
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"golang.org/x/oauth2"
)

func isolateXDG(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestLoadDefaultsWithNoFile(t *testing.T) {
	isolateXDG(t)
	t.Setenv("STUDIOCTL_API_BASE", "")
	t.Setenv("STUDIOCTL_ORG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIBase != "" {
		t.Errorf("expected empty api base, got %q", cfg.APIBase)
	}
	if cfg.DeviceID == "" {
		t.Error("device id must be minted on first load")
	}
	if err := cfg.Validate(); err == nil {
		t.Error("empty config must not validate")
	}
}

func TestLoadFileWithEnvOverride(t *testing.T) {
	isolateXDG(t)

	if err := os.MkdirAll(Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	file := []byte("api_base: https://file.example/api\norg_id: org-file\n")
	if err := os.WriteFile(Path(), file, 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("STUDIOCTL_API_BASE", "https://env.example/api")
	t.Setenv("STUDIOCTL_ORG", "")
	t.Setenv("STUDIOCTL_EVENT", "ev-7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIBase != "https://env.example/api" {
		t.Errorf("env must override file, got %q", cfg.APIBase)
	}
	if cfg.OrgID != "org-file" {
		t.Errorf("file value must survive empty env, got %q", cfg.OrgID)
	}
	if cfg.DefaultEvent != "ev-7" {
		t.Errorf("expected event from env, got %q", cfg.DefaultEvent)
	}
	if cfg.LiveBase != cfg.APIBase {
		t.Errorf("live base must default to api base, got %q", cfg.LiveBase)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("complete config must validate: %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolateXDG(t)
	t.Setenv("STUDIOCTL_API_BASE", "")
	t.Setenv("STUDIOCTL_ORG", "")
	t.Setenv("STUDIOCTL_EVENT", "")

	cfg := &Config{APIBase: "https://api.example/api", OrgID: "org-1", DeviceID: "dev-1"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.APIBase != cfg.APIBase || loaded.OrgID != cfg.OrgID || loaded.DeviceID != "dev-1" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestTokenStorage(t *testing.T) {
	isolateXDG(t)

	if _, err := LoadToken(); err == nil {
		t.Error("expected error with no stored credentials")
	}

	token := &oauth2.Token{
		AccessToken:  "tok-1",
		RefreshToken: "ref-1",
		Expiry:       time.Now().Add(time.Hour).UTC(),
	}
	if err := SaveToken(token); err != nil {
		t.Fatalf("SaveToken failed: %v", err)
	}

	info, err := os.Stat(CredentialsPath())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("credentials must be owner-only, got %v", info.Mode().Perm())
	}

	loaded, err := LoadToken()
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}
	if loaded.AccessToken != "tok-1" || loaded.RefreshToken != "ref-1" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}

	if err := ClearToken(); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadToken(); err == nil {
		t.Error("expected error after clearing credentials")
	}
	// Clearing twice is fine.
	if err := ClearToken(); err != nil {
		t.Errorf("second clear must be a no-op, got %v", err)
	}
}
