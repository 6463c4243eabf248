package render

import (
	"slices"
	"strings"

	"github.com/matzehuels/incgraph/pkg/errors"
)

// Output formats.
const (
	FormatBMP  = "bmp"
	FormatGIF  = "gif"
	FormatJPG  = "jpg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatBMP, FormatGIF, FormatJPG, FormatPNG, FormatPDF, FormatSVG, FormatDOT, FormatJSON}

// ValidateFormat rejects formats not in Formats.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// IsImage reports whether format is produced by a layout engine, as opposed
// to a textual description of the graph.
func IsImage(format string) bool {
	return format != FormatDOT && format != FormatJSON
}
