// Package analyzer drives the external ClassAnalyzer helper: a small
// compiled Java program that reflects on a class and lists the fields
// accessible to it, together with the availability of a given accessor
// method for each field.
package analyzer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode"
)

// AccessorKind enumerates the accessor shapes javamate can generate
// for a field named x of type T: T getX(), void setX(T), and a wither
// This withX(T) that mutates and returns the instance.
type AccessorKind int

const (
	AccessorNone AccessorKind = iota
	AccessorGetter
	AccessorSetter
	AccessorWither
)

// Prefix returns the accessor method prefix ("get", "set", "with"), or
// the empty string for AccessorNone.
func (k AccessorKind) Prefix() string {
	switch k {
	case AccessorGetter:
		return "get"
	case AccessorSetter:
		return "set"
	case AccessorWither:
		return "with"
	}
	return ""
}

// RequiresModifiableField reports whether the accessor writes the
// field. The analyzer drops final fields for these kinds.
func (k AccessorKind) RequiresModifiableField() bool {
	return k == AccessorSetter || k == AccessorWither
}

// AccessorKindOf maps a prefix to its kind, case-insensitively.
// Unknown prefixes map to AccessorNone.
func AccessorKindOf(prefix string) AccessorKind {
	switch strings.ToLower(prefix) {
	case "get":
		return AccessorGetter
	case "set":
		return AccessorSetter
	case "with":
		return AccessorWither
	}
	return AccessorNone
}

// MethodName returns the accessor method name for a field, e.g.
// "getValue" for field "value".
func (k AccessorKind) MethodName(field string) string {
	prefix := k.Prefix()
	if prefix == "" || field == "" {
		return ""
	}
	runes := []rune(field)
	runes[0] = unicode.ToUpper(runes[0])
	return prefix + string(runes)
}

// Availability tells where an accessor method for a field already
// exists. Values follow the ordinals printed by the helper.
type Availability int

const (
	AvailabilityNone Availability = iota
	AvailabilityCurrentClass
	AvailabilityAncestor
)

func (a Availability) String() string {
	switch a {
	case AvailabilityNone:
		return "none"
	case AvailabilityCurrentClass:
		return "current"
	case AvailabilityAncestor:
		return "ancestor"
	}
	return "unknown"
}

// Field is one accessible field reported by the helper: declared in
// the class under analysis or inherited and visible from it.
type Field struct {
	Name         string
	Type         string
	Availability Availability
}

// Report is the full output of one helper run.
type Report struct {
	ClassName string
	Fields    []Field
}

// Runner invokes the ClassAnalyzer helper through the configured java
// command.
type Runner struct {
	// JavaCmd is the java launcher to run, "java" when empty.
	JavaCmd string
	// Classpath must contain the compiled ClassAnalyzer helper and
	// the classes under analysis.
	Classpath string
}

// AccessibleFields reflects on className and returns its accessible
// fields, restricted to modifiable ones when kind writes the field.
func (r *Runner) AccessibleFields(ctx context.Context, className string, kind AccessorKind) (*Report, error) {
	javaCmd := r.JavaCmd
	if javaCmd == "" {
		javaCmd = "java"
	}

	args := []string{}
	if r.Classpath != "" {
		args = append(args, "-cp", r.Classpath)
	}
	args = append(args, "ClassAnalyzer", className, kind.Prefix())

	cmd := exec.CommandContext(ctx, javaCmd, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("analyze %s: %s: %w", className, msg, err)
		}
		return nil, fmt.Errorf("analyze %s: %w", className, err)
	}

	report, err := ParseReport(stdout.String())
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", className, err)
	}
	return report, nil
}

// ParseReport decodes the helper's line output: the simple class name
// on the first line, then one field per line in the form
// "<Type> <name> <availabilityOrdinal>".
func ParseReport(output string) (*Report, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("empty analyzer output")
	}

	report := &Report{ClassName: strings.TrimSpace(lines[0])}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed field line %q", line)
		}
		ordinal, err := strconv.Atoi(parts[2])
		if err != nil || ordinal < int(AvailabilityNone) || ordinal > int(AvailabilityAncestor) {
			return nil, fmt.Errorf("bad availability in field line %q", line)
		}
		report.Fields = append(report.Fields, Field{
			Type:         parts[0],
			Name:         parts[1],
			Availability: Availability(ordinal),
		})
	}
	return report, nil
}
