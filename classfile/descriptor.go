package classfile

import "strings"

var primitiveNames = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
	'V': "void",
}

// SimpleTypeName converts a field descriptor to the simple source
// name of its type, the way java.lang.Class.getSimpleName renders it:
// "Ljava/lang/String;" becomes "String", "[I" becomes "int[]".
func SimpleTypeName(desc string) string {
	dims := 0
	for dims < len(desc) && desc[dims] == '[' {
		dims++
	}
	desc = desc[dims:]

	var name string
	switch {
	case desc == "":
		name = ""
	case desc[0] == 'L':
		name = strings.TrimSuffix(desc[1:], ";")
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
		if i := strings.LastIndexByte(name, '$'); i >= 0 {
			name = name[i+1:]
		}
	default:
		name = primitiveNames[desc[0]]
	}
	return name + strings.Repeat("[]", dims)
}

// ParamDescriptors splits a method descriptor into the descriptors of
// its parameters, e.g. "(ILjava/lang/String;[J)V" yields
// ["I", "Ljava/lang/String;", "[J"].
func ParamDescriptors(desc string) []string {
	var params []string
	if len(desc) == 0 || desc[0] != '(' {
		return nil
	}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		start := i
		for i < len(desc) && desc[i] == '[' {
			i++
		}
		if i < len(desc) && desc[i] == 'L' {
			end := strings.IndexByte(desc[i:], ';')
			if end < 0 {
				return params
			}
			i += end + 1
		} else {
			i++
		}
		params = append(params, desc[start:i])
	}
	return params
}
