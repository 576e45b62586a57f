package analyzer

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/javamate/classfile"
	"github.com/google/go-cmp/cmp"
)

type classSpec struct {
	name    string
	super   string
	fields  []classfile.Field
	methods []classfile.Method
}

// classBytes serializes the skeleton of a compiled class: a minimal
// constant pool, the hierarchy links, and the member tables.
func classBytes(spec classSpec) []byte {
	type cpEntry struct {
		tag byte
		str string
		ref uint16
	}
	var pool []cpEntry
	utf8Index := map[string]uint16{}
	addUtf8 := func(s string) uint16 {
		if i, ok := utf8Index[s]; ok {
			return i
		}
		pool = append(pool, cpEntry{tag: 1, str: s})
		utf8Index[s] = uint16(len(pool))
		return utf8Index[s]
	}
	addClass := func(name string) uint16 {
		ref := addUtf8(name)
		pool = append(pool, cpEntry{tag: 7, ref: ref})
		return uint16(len(pool))
	}

	thisIndex := addClass(spec.name)
	superIndex := uint16(0)
	if spec.super != "" {
		superIndex = addClass(spec.super)
	}
	for _, f := range spec.fields {
		addUtf8(f.Name)
		addUtf8(f.Descriptor)
	}
	for _, m := range spec.methods {
		addUtf8(m.Name)
		addUtf8(m.Descriptor)
	}

	var buf bytes.Buffer
	u2 := func(v uint16) { binary.Write(&buf, binary.BigEndian, v) }
	u4 := func(v uint32) { binary.Write(&buf, binary.BigEndian, v) }

	u4(0xCAFEBABE)
	u2(0)
	u2(61)
	u2(uint16(len(pool)) + 1)
	for _, e := range pool {
		buf.WriteByte(e.tag)
		if e.tag == 1 {
			u2(uint16(len(e.str)))
			buf.WriteString(e.str)
		} else {
			u2(e.ref)
		}
	}
	u2(0x0021) // public super
	u2(thisIndex)
	u2(superIndex)
	u2(0) // interfaces
	u2(uint16(len(spec.fields)))
	for _, f := range spec.fields {
		u2(uint16(f.AccessFlags))
		u2(utf8Index[f.Name])
		u2(utf8Index[f.Descriptor])
		u2(0)
	}
	u2(uint16(len(spec.methods)))
	for _, m := range spec.methods {
		u2(uint16(m.AccessFlags))
		u2(utf8Index[m.Name])
		u2(utf8Index[m.Descriptor])
		u2(0)
	}
	u2(0)
	return buf.Bytes()
}

func writeClassFile(t *testing.T, dir string, spec classSpec) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(spec.name)+".class")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, classBytes(spec), 0644); err != nil {
		t.Fatal(err)
	}
}

func writeJar(t *testing.T, path string, specs ...classSpec) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for _, spec := range specs {
		w, err := zw.Create(spec.name + ".class")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(classBytes(spec)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func testClasspath(t *testing.T) *Offline {
	t.Helper()
	dir := t.TempDir()

	writeClassFile(t, dir, classSpec{
		name:  "testpkg/Person",
		super: "testpkg/Base",
		fields: []classfile.Field{
			{AccessFlags: classfile.AccPrivate, Name: "name", Descriptor: "Ljava/lang/String;"},
		},
		methods: []classfile.Method{
			{AccessFlags: classfile.AccPublic, Name: "getName", Descriptor: "()Ljava/lang/String;"},
		},
	})

	// The superclass lives in a jar to cover both entry kinds.
	jar := filepath.Join(dir, "base.jar")
	writeJar(t, jar, classSpec{
		name:  "testpkg/Base",
		super: "",
		fields: []classfile.Field{
			{AccessFlags: classfile.AccProtected | classfile.AccFinal, Name: "id", Descriptor: "J"},
			{AccessFlags: classfile.AccPrivate, Name: "secret", Descriptor: "Ljava/lang/String;"},
			{AccessFlags: classfile.AccStatic, Name: "count", Descriptor: "I"},
		},
		methods: []classfile.Method{
			{AccessFlags: classfile.AccPublic, Name: "getId", Descriptor: "()J"},
		},
	})

	return &Offline{Entries: []string{dir, jar}}
}

func TestOfflineAccessibleFieldsGetter(t *testing.T) {
	offline := testClasspath(t)

	report, err := offline.AccessibleFields(context.Background(), "testpkg.Person", AccessorGetter)
	if err != nil {
		t.Fatalf("AccessibleFields() error: %v", err)
	}

	want := &Report{
		ClassName: "Person",
		Fields: []Field{
			{Name: "name", Type: "String", Availability: AvailabilityCurrentClass},
			{Name: "id", Type: "long", Availability: AvailabilityAncestor},
		},
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestOfflineSkipsFinalFieldsForSetters(t *testing.T) {
	offline := testClasspath(t)

	report, err := offline.AccessibleFields(context.Background(), "testpkg.Person", AccessorSetter)
	if err != nil {
		t.Fatalf("AccessibleFields() error: %v", err)
	}

	want := []Field{
		{Name: "name", Type: "String", Availability: AvailabilityNone},
	}
	if diff := cmp.Diff(want, report.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestOfflineUnknownClass(t *testing.T) {
	offline := testClasspath(t)
	if _, err := offline.AccessibleFields(context.Background(), "testpkg.Missing", AccessorGetter); err == nil {
		t.Error("expected an error for an unknown class")
	}
}

func TestAccessorParamsMatch(t *testing.T) {
	field := classfile.Field{Name: "name", Descriptor: "Ljava/lang/String;"}
	tests := []struct {
		name   string
		method classfile.Method
		kind   AccessorKind
		want   bool
	}{
		{"getter no args", classfile.Method{Descriptor: "()Ljava/lang/String;"}, AccessorGetter, true},
		{"getter with args", classfile.Method{Descriptor: "(I)Ljava/lang/String;"}, AccessorGetter, false},
		{"setter same type", classfile.Method{Descriptor: "(Ljava/lang/String;)V"}, AccessorSetter, true},
		{"setter other type", classfile.Method{Descriptor: "(I)V"}, AccessorSetter, false},
		{"wither same type", classfile.Method{Descriptor: "(Ljava/lang/String;)Ltestpkg/Person;"}, AccessorWither, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := accessorParamsMatch(tt.method, field, tt.kind); got != tt.want {
				t.Errorf("accessorParamsMatch = %v, want %v", got, tt.want)
			}
		})
	}
}
