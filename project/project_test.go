package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Type != TypeBasic {
		t.Errorf("Type = %q, want %q", cfg.Type, TypeBasic)
	}
	if cfg.JavaCmd != "java" {
		t.Errorf("JavaCmd = %q, want %q", cfg.JavaCmd, "java")
	}
	if len(cfg.Accessors) != 3 {
		t.Errorf("got %d accessors, want 3", len(cfg.Accessors))
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFile))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Type != TypeBasic || cfg.JavaCmd != "java" {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)

	cfg := Default()
	cfg.Type = TypeMaven
	cfg.JavaCmd = "/opt/jdk/bin/java"
	cfg.AnalyzerClasspath = "target/classes"
	cfg.Accessors = []string{"get"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Type != TypeMaven {
		t.Errorf("Type = %q, want %q", loaded.Type, TypeMaven)
	}
	if loaded.JavaCmd != "/opt/jdk/bin/java" {
		t.Errorf("JavaCmd = %q", loaded.JavaCmd)
	}
	if loaded.AnalyzerClasspath != "target/classes" {
		t.Errorf("AnalyzerClasspath = %q", loaded.AnalyzerClasspath)
	}
	if len(loaded.Accessors) != 1 || loaded.Accessors[0] != "get" {
		t.Errorf("Accessors = %v, want [get]", loaded.Accessors)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(path, []byte(":\t not yaml ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed yaml succeeded, want error")
	}
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   Type
	}{
		{"maven", "pom.xml", TypeMaven},
		{"gradle", "build.gradle", TypeGradle},
		{"gradle kotlin dsl", "build.gradle.kts", TypeGradle},
		{"no marker", "", TypeBasic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.marker != "" {
				if err := os.WriteFile(filepath.Join(dir, tt.marker), nil, 0644); err != nil {
					t.Fatal(err)
				}
			}
			if got := DetectType(dir); got != tt.want {
				t.Errorf("DetectType = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadFromDetectsType(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pom.xml"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	// The config file pins no type.
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("type: \"\"\njava_cmd: java\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Type != TypeMaven {
		t.Errorf("Type = %q, want %q", cfg.Type, TypeMaven)
	}
}
