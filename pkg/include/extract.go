package include

import (
	"os"
	"regexp"
	"strings"
)

// Markers holds the lexical markers the comment filter and include pattern
// are built from.
type Markers struct {
	BlockOpen   string // e.g. "/*"
	BlockClose  string // e.g. "*/"
	LineComment string // e.g. "//"
	Include     string // e.g. "#include"
}

// DefaultMarkers returns the C/C++ comment and include markers.
func DefaultMarkers() Markers {
	return Markers{
		BlockOpen:   "/*",
		BlockClose:  "*/",
		LineComment: "//",
		Include:     "#include",
	}
}

// Extractor finds included names in file text.
// It is immutable after construction and safe for concurrent use.
type Extractor struct {
	markers Markers
	pattern *regexp.Regexp
}

// NewExtractor builds an Extractor for the given markers. The include
// pattern matches the include token, whitespace, then a quoted or
// angle-bracketed file name; the capture is greedy up to the last closing
// quote or bracket on the line.
func NewExtractor(m Markers) *Extractor {
	return &Extractor{
		markers: m,
		pattern: regexp.MustCompile(regexp.QuoteMeta(m.Include) + `\s+["<"](.*)[">]`),
	}
}

// ExtractFile reads path and returns the normalized names it includes.
// Invalid UTF-8 sequences are dropped rather than reported; only a failure
// to open or read the file is returned as an error.
func (e *Extractor) ExtractFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return e.Extract(Decode(data)), nil
}

// Extract returns the normalized names referenced by uncommented include
// directives in text, in order of appearance. Duplicates are kept.
func (e *Extractor) Extract(text string) []string {
	code := strings.Join(e.StripComments(text), "\n")

	matches := e.pattern.FindAllStringSubmatch(code, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, Normalize(m[1]))
	}
	return names
}

// StripComments returns the lines of text that survive the comment filter,
// unmodified.
func (e *Extractor) StripComments(text string) []string {
	m := e.markers
	var kept []string

	inBlock := false
	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)

		if inBlock {
			if strings.Contains(trimmed, m.BlockClose) {
				inBlock = false
			}
			continue
		}
		if strings.HasPrefix(trimmed, m.BlockOpen) {
			inBlock = true
			continue
		}
		if strings.HasPrefix(trimmed, m.LineComment) {
			continue
		}
		if c := strings.Index(line, m.LineComment); c != -1 {
			if i := strings.Index(line, m.Include); i > c {
				continue
			}
		}

		kept = append(kept, line)
	}
	return kept
}

// Decode converts raw file content to text, dropping byte sequences that are
// not valid UTF-8.
func Decode(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

// splitLines splits on \n, \r\n and lone \r.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
