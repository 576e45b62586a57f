// Package project holds the persisted javamate configuration: the
// project type, the tool paths used to run the ClassAnalyzer helper,
// and the accessor naming conventions offered for generation.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the configuration file name looked up in the project
// root directory.
const ConfigFile = ".javamate.yaml"

// Type classifies how a project's classes get compiled, which decides
// where the analyzer finds them.
type Type string

const (
	TypeBasic  Type = "basic"
	TypeMaven  Type = "maven"
	TypeGradle Type = "gradle"
)

// Config is the on-disk configuration.
type Config struct {
	// Type of the project; detected from marker files when absent.
	Type Type `yaml:"type"`
	// JavaCmd is the java launcher used for the analyzer helper.
	JavaCmd string `yaml:"java_cmd"`
	// AnalyzerClasspath locates the compiled ClassAnalyzer helper
	// and the project's compiled classes.
	AnalyzerClasspath string `yaml:"analyzer_classpath"`
	// Accessors lists the accessor prefixes offered for generation.
	Accessors []string `yaml:"accessors"`
	// Indent is one indentation unit for generated code.
	Indent string `yaml:"indent"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Type:      TypeBasic,
		JavaCmd:   "java",
		Accessors: []string{"get", "set", "with"},
		Indent:    "    ",
	}
}

// Load reads the configuration file at path. A missing file yields the
// defaults, not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadFrom reads the configuration from dir, detecting the project
// type from marker files when the file does not pin one.
func LoadFrom(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, ConfigFile))
	if err != nil {
		return nil, err
	}
	if cfg.Type == "" {
		cfg.Type = DetectType(dir)
	}
	return cfg, nil
}

// Save writes the configuration file at path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DetectType inspects dir for build-system marker files.
func DetectType(dir string) Type {
	if exists(filepath.Join(dir, "pom.xml")) {
		return TypeMaven
	}
	if exists(filepath.Join(dir, "build.gradle")) || exists(filepath.Join(dir, "build.gradle.kts")) {
		return TypeGradle
	}
	return TypeBasic
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
