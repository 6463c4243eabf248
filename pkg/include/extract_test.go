package include

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestExtract(t *testing.T) {
	ex := NewExtractor(DefaultMarkers())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "quoted",
			text: "#include \"b.h\"\n",
			want: []string{"b"},
		},
		{
			name: "angle brackets",
			text: "#include <vector>\n#include <sys/types.h>\n",
			want: []string{"vector", "types"},
		},
		{
			name: "path components dropped",
			text: "#include \"net/socket.hpp\"",
			want: []string{"socket"},
		},
		{
			name: "duplicates kept in order",
			text: "#include \"a.h\"\n#include \"b.h\"\n#include \"a.h\"\n",
			want: []string{"a", "b", "a"},
		},
		{
			name: "full line comment",
			text: "// #include \"b.h\"\n",
			want: nil,
		},
		{
			name: "indented line comment",
			text: "    // #include \"b.h\"\n",
			want: nil,
		},
		{
			name: "line comment before include",
			text: "int x; // #include \"b.h\"\n",
			want: nil,
		},
		{
			name: "trailing comment after include",
			text: "#include \"a.h\" // pulls in b\n",
			want: []string{"a"},
		},
		{
			name: "block comment spanning lines",
			text: "/*\n#include \"b.h\"\n*/\n#include \"c.h\"\n",
			want: []string{"c"},
		},
		{
			name: "text after close marker is dropped",
			text: "/* start\n*/ #include \"b.h\"\n#include \"c.h\"\n",
			want: []string{"c"},
		},
		{
			name: "close marker on the opening line is not seen",
			text: "/* license */\n#include \"b.h\"\n*/\n#include \"c.h\"\n",
			want: []string{"c"},
		},
		{
			name: "mid-line block comment is not detected",
			text: "int x; /*\n#include \"b.h\"\n*/\n",
			want: []string{"b"},
		},
		{
			name: "whitespace between token and name",
			text: "#include\t  \"a.h\"\n",
			want: []string{"a"},
		},
		{
			name: "crlf line endings",
			text: "#include \"a.h\"\r\n// #include \"b.h\"\r\n#include <c.hpp>\r\n",
			want: []string{"a", "c"},
		},
		{
			name: "no includes",
			text: "int main() { return 0; }\n",
			want: nil,
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.text)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripCommentsKeepsLinesVerbatim(t *testing.T) {
	ex := NewExtractor(DefaultMarkers())
	text := "  #include \"a.h\"  \nint x;\n// gone\n"

	got := ex.StripComments(text)
	want := []string{"  #include \"a.h\"  ", "int x;"}
	if !slices.Equal(got, want) {
		t.Errorf("StripComments() = %q, want %q", got, want)
	}
}

func TestExtractCustomMarkers(t *testing.T) {
	ex := NewExtractor(Markers{
		BlockOpen:   "(*",
		BlockClose:  "*)",
		LineComment: "--",
		Include:     "#import",
	})

	text := "#import <Foundation/Foundation.h>\n-- #import \"skip.h\"\n(*\n#import \"gone.h\"\n*)\n#include \"ignored.h\"\n"
	got := ex.Extract(text)
	want := []string{"Foundation"}
	if !slices.Equal(got, want) {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtractFile(t *testing.T) {
	ex := NewExtractor(DefaultMarkers())
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cpp")

	// 0xff and 0xfe are never valid in UTF-8.
	content := []byte("#include \"b\xff.h\"\n\xfe// #include \"c.h\"\n#include \"d.h\"\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ex.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() error: %v", err)
	}
	want := []string{"b", "d"}
	if !slices.Equal(got, want) {
		t.Errorf("ExtractFile() = %q, want %q", got, want)
	}
}

func TestExtractFileMissing(t *testing.T) {
	ex := NewExtractor(DefaultMarkers())
	if _, err := ex.ExtractFile(filepath.Join(t.TempDir(), "nope.h")); err == nil {
		t.Error("ExtractFile() expected error for missing file")
	}
}

func TestDecode(t *testing.T) {
	if got := Decode([]byte("ok\xffok")); got != "okok" {
		t.Errorf("Decode() = %q, want %q", got, "okok")
	}
}
