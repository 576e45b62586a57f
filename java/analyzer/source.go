package analyzer

import (
	"context"
	"path/filepath"

	"github.com/dhamidi/javamate/pom"
	"github.com/dhamidi/javamate/project"
)

// Source produces the accessible-fields report for a class.
type Source interface {
	AccessibleFields(ctx context.Context, className string, kind AccessorKind) (*Report, error)
}

// SourceFor picks the report source for a project rooted at dir: the
// ClassAnalyzer helper when a classpath for it is configured,
// otherwise compiled class files read straight from the project's
// build output.
func SourceFor(cfg *project.Config, dir string) Source {
	if cfg.AnalyzerClasspath != "" {
		return &Runner{JavaCmd: cfg.JavaCmd, Classpath: cfg.AnalyzerClasspath}
	}
	return &Offline{Entries: classpathEntries(cfg, dir)}
}

// classpathEntries lists where a project of the given type puts its
// compiled classes. Maven projects additionally contribute their
// dependency jars from the local repository.
func classpathEntries(cfg *project.Config, dir string) []string {
	switch cfg.Type {
	case project.TypeMaven:
		entries := []string{filepath.Join(dir, "target", "classes")}
		if model, err := pom.Load(filepath.Join(dir, "pom.xml")); err == nil {
			entries = append(entries, model.Classpath(pom.LocalRepository())...)
		}
		return entries
	case project.TypeGradle:
		return []string{filepath.Join(dir, "build", "classes", "java", "main")}
	}
	return []string{filepath.Join(dir, "out"), filepath.Join(dir, "bin")}
}
