// Package pom reads Maven project descriptors. javamate uses it to
// derive the classpath of an already built Maven project from the
// local repository, so compiled classes can be analyzed without extra
// configuration.
package pom

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dependency is one dependency declaration of a POM.
type Dependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
	Type       string `xml:"type"`
}

// JarPath returns the dependency's jar location under the local
// repository root, following the standard repository layout.
func (d Dependency) JarPath(repo string) string {
	group := strings.ReplaceAll(d.GroupID, ".", string(filepath.Separator))
	jar := fmt.Sprintf("%s-%s.jar", d.ArtifactID, d.Version)
	return filepath.Join(repo, group, d.ArtifactID, d.Version, jar)
}

// Model is the subset of a pom.xml javamate reads.
type Model struct {
	XMLName      xml.Name     `xml:"project"`
	GroupID      string       `xml:"groupId"`
	ArtifactID   string       `xml:"artifactId"`
	Version      string       `xml:"version"`
	Packaging    string       `xml:"packaging"`
	Dependencies []Dependency `xml:"dependencies>dependency"`
}

// Load parses the pom.xml at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pom: %w", err)
	}
	return Parse(data)
}

// Parse parses pom.xml content.
func Parse(data []byte) (*Model, error) {
	var m Model
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse pom: %w", err)
	}
	return &m, nil
}

// LocalRepository returns the default local repository location,
// honoring M2_HOME-less setups: $HOME/.m2/repository.
func LocalRepository() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".m2", "repository")
}

// Classpath returns the jar paths of the model's compile and runtime
// dependencies under the local repository root. Dependencies whose
// version is missing or left to property interpolation are skipped;
// resolving those needs the full Maven machinery.
func (m *Model) Classpath(repo string) []string {
	var paths []string
	for _, d := range m.Dependencies {
		switch d.Scope {
		case "", "compile", "runtime", "provided":
		default:
			continue
		}
		if d.Version == "" || strings.Contains(d.Version, "${") {
			continue
		}
		if d.Type != "" && d.Type != "jar" {
			continue
		}
		paths = append(paths, d.JarPath(repo))
	}
	return paths
}
