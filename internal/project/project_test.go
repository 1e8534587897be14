package project

import (
	"path/filepath"
	"testing"

	"github.com/renoworks/renoquote/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "bath.json")

	p := model.NewProject("Main Bath", "Jordan")
	p.Floors.MainWidthIn = "60"
	p.Floors.MainLengthIn = "96"
	p.ItemsFor(model.WorkflowFloors).Labor = []model.LaborItem{
		model.NewCustomLaborItem("floors", "extra", "1", "85"),
	}

	if err := Save(path, p); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.ID != p.ID || loaded.Name != p.Name {
		t.Errorf("identity fields did not round-trip: %+v", loaded)
	}
	if loaded.Floors.MainWidthIn != "60" {
		t.Errorf("design fields did not round-trip")
	}
	if len(loaded.ItemsFor(model.WorkflowFloors).Labor) != 1 {
		t.Errorf("items did not round-trip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing project file")
	}
}

func TestLoadRejectsEmptyID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := Save(path, &model.Project{Name: "no id"}); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for a project without an id")
	}
}

func TestLoadSettingsMissingFileGivesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("missing settings file should not error: %v", err)
	}
	defaults := model.DefaultSettings()
	if s.HourlyRate != defaults.HourlyRate || s.Currency != defaults.Currency {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s := model.DefaultSettings()
	s.CompanyName = "Apex Renovations"
	s.HourlyRate = 95

	if err := SaveSettings(path, s); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.CompanyName != "Apex Renovations" || loaded.HourlyRate != 95 {
		t.Errorf("settings did not round-trip: %+v", loaded)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	settings := model.DefaultSettings()
	projects := []*model.Project{
		model.NewProject("One", "A"),
		model.NewProject("Two", "B"),
	}

	if err := ExportAllData(path, settings, projects); err != nil {
		t.Fatal(err)
	}
	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatal(err)
	}
	if backup.Version == "" {
		t.Error("expected a version stamp")
	}
	if len(backup.Projects) != 2 {
		t.Errorf("expected 2 projects, got %d", len(backup.Projects))
	}
}

func TestImportAllDataRejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := Save(path, model.NewProject("not a backup", "")); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Error("expected an error for a file without a version field")
	}
}
