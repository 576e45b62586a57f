package classfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf16"
)

const magic = 0xCAFEBABE

// Constant pool tags, JVMS §4.4.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

type reader struct {
	data []byte
	pos  int
	err  error
}

func (r *reader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf(format, args...)
	}
}

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.pos+n > len(r.data) {
		r.fail("truncated class file at offset %d", r.pos)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) u1() uint8 {
	b := r.bytes(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) u2() uint16 {
	b := r.bytes(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *reader) u4() uint32 {
	b := r.bytes(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (r *reader) skip(n int) {
	r.bytes(n)
}

// pool holds only what name resolution needs: utf8 strings and the
// name index of class entries.
type pool struct {
	utf8  map[uint16]string
	class map[uint16]uint16
}

func (p *pool) classNameAt(index uint16) string {
	return p.utf8[p.class[index]]
}

// ParseFile reads and parses the class file at path.
func ParseFile(path string) (*Class, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a class file from rd.
func Parse(rd io.Reader) (*Class, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read class file: %w", err)
	}
	r := &reader{data: data}

	if m := r.u4(); r.err == nil && m != magic {
		return nil, fmt.Errorf("bad magic number 0x%08X", m)
	}
	r.skip(4) // minor, major

	cp := readConstantPool(r)

	cf := &Class{AccessFlags: AccessFlags(r.u2())}
	cf.Name = cp.classNameAt(r.u2())
	if super := r.u2(); super != 0 {
		cf.SuperName = cp.classNameAt(super)
	}

	interfaceCount := int(r.u2())
	r.skip(2 * interfaceCount)

	fieldCount := int(r.u2())
	for i := 0; i < fieldCount && r.err == nil; i++ {
		flags, name, desc := readMember(r, cp)
		cf.Fields = append(cf.Fields, Field{AccessFlags: flags, Name: name, Descriptor: desc})
	}

	methodCount := int(r.u2())
	for i := 0; i < methodCount && r.err == nil; i++ {
		flags, name, desc := readMember(r, cp)
		cf.Methods = append(cf.Methods, Method{AccessFlags: flags, Name: name, Descriptor: desc})
	}

	// Class-level attributes are not read.

	if r.err != nil {
		return nil, r.err
	}
	if cf.Name == "" {
		return nil, fmt.Errorf("class file has no this_class entry")
	}
	return cf, nil
}

func readConstantPool(r *reader) *pool {
	cp := &pool{utf8: map[uint16]string{}, class: map[uint16]uint16{}}
	count := r.u2()
	for i := uint16(1); i < count && r.err == nil; i++ {
		tag := r.u1()
		switch tag {
		case tagUtf8:
			n := int(r.u2())
			cp.utf8[i] = decodeModifiedUTF8(r.bytes(n))
		case tagClass:
			cp.class[i] = r.u2()
		case tagInteger, tagFloat:
			r.skip(4)
		case tagLong, tagDouble:
			r.skip(8)
			i++ // takes two pool slots
		case tagString, tagMethodType, tagModule, tagPackage:
			r.skip(2)
		case tagFieldref, tagMethodref, tagInterfaceMethodref,
			tagNameAndType, tagDynamic, tagInvokeDynamic:
			r.skip(4)
		case tagMethodHandle:
			r.skip(3)
		default:
			r.fail("unknown constant pool tag %d at entry %d", tag, i)
		}
	}
	return cp
}

// readMember reads one field_info or method_info entry, skipping its
// attributes.
func readMember(r *reader, cp *pool) (AccessFlags, string, string) {
	flags := AccessFlags(r.u2())
	name := cp.utf8[r.u2()]
	desc := cp.utf8[r.u2()]
	attrCount := int(r.u2())
	for i := 0; i < attrCount && r.err == nil; i++ {
		r.skip(2) // attribute_name_index
		r.skip(int(r.u4()))
	}
	return flags, name, desc
}

// decodeModifiedUTF8 decodes the JVM's modified UTF-8: no four-byte
// sequences, U+0000 encoded as two bytes, supplementary characters as
// surrogate pairs of three-byte sequences.
func decodeModifiedUTF8(b []byte) string {
	var sb strings.Builder
	var pending []uint16
	flush := func() {
		if len(pending) > 0 {
			for _, r := range utf16.Decode(pending) {
				sb.WriteRune(r)
			}
			pending = pending[:0]
		}
	}
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			flush()
			sb.WriteByte(c)
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			flush()
			sb.WriteRune(rune(c&0x1F)<<6 | rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			u := uint16(c&0x0F)<<12 | uint16(b[i+1]&0x3F)<<6 | uint16(b[i+2]&0x3F)
			pending = append(pending, u)
			i += 3
		default:
			flush()
			sb.WriteByte(c)
			i++
		}
	}
	flush()
	return sb.String()
}
