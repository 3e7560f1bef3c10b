// Package artifact renders, parses and stores the text document produced by
// a conversion: the glyph grid followed by a metadata footer.
package artifact

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"imgchars/convert"
	"imgchars/resample"
)

// Section headers of the footer.
const (
	SectionInfo     = "<INFO>"
	SectionSettings = "<SETTINGS>"
	SectionSpecs    = "<PROCESSING-SPECS>"
)

var authorLines = []string{
	"author: Memphis",
	"instagram: @memphis_pc",
	"discord: Memphis#3543",
	"github: https://github.com/iNxmi",
}

// Settings echoes the choices a document was produced with.
type Settings struct {
	SourcePath      string
	DestinationPath string
	FontName        string
	RampName        string
	Mode            resample.Mode
}

type Document struct {
	Result   *convert.Result
	Settings Settings
	// Version is written to the info block when set.
	Version string
}

// String renders the grid, a blank line and the footer. The last footer line
// has no trailing newline.
func (d Document) String() string {
	var sb strings.Builder
	sb.WriteString(d.Result.Text)

	sb.WriteString("\n" + SectionInfo + "\n")
	if d.Version != "" {
		fmt.Fprintf(&sb, "version: %s\n", d.Version)
	}
	for _, line := range authorLines {
		sb.WriteString(line + "\n")
	}

	s := d.Settings
	sb.WriteString("\n" + SectionSettings + "\n")
	fmt.Fprintf(&sb, "filePathTextField: %s\n", s.SourcePath)
	fmt.Fprintf(&sb, "destinationPathTextField: %s\n", s.DestinationPath)
	fmt.Fprintf(&sb, "fontNameComboBox: %s\n", s.FontName)
	fmt.Fprintf(&sb, "charsetComboBox: %s\n", s.RampName)
	fmt.Fprintf(&sb, "widthScalingRadioButton: %t\n", s.Mode == resample.MatchWidth)
	fmt.Fprintf(&sb, "heightScalingRadioButton: %t\n", s.Mode == resample.MatchHeight)
	fmt.Fprintf(&sb, "noneScalingRadioButton: %t\n", s.Mode == resample.None)

	r := d.Result
	sb.WriteString("\n" + SectionSpecs + "\n")
	fmt.Fprintf(&sb, "rawImgWidth: %dpx\n", r.RawSize.X)
	fmt.Fprintf(&sb, "rawImgHeight: %dpx\n", r.RawSize.Y)
	fmt.Fprintf(&sb, "scaledImgWidth: %dpx\n", r.ScaledSize.X)
	fmt.Fprintf(&sb, "scaledImgHeight: %dpx\n", r.ScaledSize.Y)
	fmt.Fprintf(&sb, "processingTime: %sms", FormatMillis(r.Elapsed))

	return sb.String()
}

// FormatMillis renders d in milliseconds with sub-millisecond precision.
func FormatMillis(d time.Duration) string {
	ms := float64(d.Nanoseconds()) / 1e6
	s := strconv.FormatFloat(ms, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
