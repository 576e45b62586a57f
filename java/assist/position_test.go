package assist

import "testing"

func TestLineIndexOffset(t *testing.T) {
	text := "ab\ncde\n\nf"
	ix := newLineIndex(text)

	tests := []struct {
		name            string
		line, character int
		want            int
	}{
		{"start of document", 0, 0, 0},
		{"middle of first line", 0, 1, 1},
		{"start of second line", 1, 0, 3},
		{"middle of second line", 1, 2, 5},
		{"empty line", 2, 0, 7},
		{"last line", 3, 0, 8},
		{"character past line end clamps", 0, 99, 2},
		{"line past document clamps", 99, 0, len(text)},
		{"negative line clamps", -1, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.Offset(tt.line, tt.character); got != tt.want {
				t.Errorf("Offset(%d, %d) = %d, want %d", tt.line, tt.character, got, tt.want)
			}
		})
	}
}

func TestLineIndexPosition(t *testing.T) {
	text := "ab\ncde\n\nf"
	ix := newLineIndex(text)

	tests := []struct {
		name                    string
		offset                  int
		wantLine, wantCharacter int
	}{
		{"start", 0, 0, 0},
		{"newline itself", 2, 0, 2},
		{"second line start", 3, 1, 0},
		{"second line middle", 5, 1, 2},
		{"empty line", 7, 2, 0},
		{"last character", 8, 3, 0},
		{"past end clamps", 99, 3, 1},
		{"negative clamps", -3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, character := ix.Position(tt.offset)
			if line != tt.wantLine || character != tt.wantCharacter {
				t.Errorf("Position(%d) = (%d, %d), want (%d, %d)",
					tt.offset, line, character, tt.wantLine, tt.wantCharacter)
			}
		})
	}
}

func TestLineIndexRoundTrip(t *testing.T) {
	text := "class A {\n    int x;\n}\n"
	ix := newLineIndex(text)

	for offset := 0; offset <= len(text); offset++ {
		line, character := ix.Position(offset)
		if got := ix.Offset(line, character); got != offset {
			t.Errorf("round trip of offset %d = %d", offset, got)
		}
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "package com.example;\n\nclass A {}", "com.example"},
		{"default package", "class A {}", ""},
		{"missing semicolon", "package com.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packageName(tt.text); got != tt.want {
				t.Errorf("packageName = %q, want %q", got, tt.want)
			}
		})
	}
}
