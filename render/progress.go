package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ncruces/zenity"
	"golang.org/x/term"
)

// progressSink shows the percentage of a single conversion. Repeated values
// are dropped; only the most recent one matters.
type progressSink interface {
	Report(percent int)
	Close()
}

func newProgressSink(kind string, logger *slog.Logger, source string) (progressSink, error) {
	if kind == "auto" {
		kind = "log"
		if term.IsTerminal(int(os.Stderr.Fd())) {
			kind = "term"
		}
	}

	switch kind {
	case "log":
		return &logProgress{logger: logger, last: -1}, nil
	case "term":
		width := 40
		if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 20 {
			width = min(w-10, 60)
		}
		return &barProgress{w: os.Stderr, width: width, last: -1}, nil
	case "dialog":
		dlg, err := zenity.Progress(
			zenity.Title("imgchars"),
			zenity.MaxValue(100),
			zenity.NoCancel(),
		)
		if err != nil {
			return nil, fmt.Errorf("could not open progress dialog: %w", err)
		}
		_ = dlg.Text(source)
		return &dialogProgress{dlg: dlg, last: -1}, nil
	case "none":
		return noProgress{}, nil
	default:
		return nil, fmt.Errorf("unsupported progress output %q", kind)
	}
}

type noProgress struct{}

func (noProgress) Report(int) {}
func (noProgress) Close()     {}

// logProgress logs every tenth percent.
type logProgress struct {
	logger *slog.Logger
	last   int
}

func (p *logProgress) Report(percent int) {
	step := percent / 10 * 10
	if step <= p.last {
		return
	}
	p.last = step
	p.logger.Info("converting", "percent", step)
}

func (p *logProgress) Close() {}

type barProgress struct {
	w     io.Writer
	width int
	last  int
}

func (p *barProgress) Report(percent int) {
	if percent == p.last {
		return
	}
	p.last = percent
	filled := p.width * percent / 100
	fmt.Fprintf(p.w, "\r[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat(" ", p.width-filled), percent)
}

func (p *barProgress) Close() {
	if p.last >= 0 {
		fmt.Fprintln(p.w)
	}
}

type dialogProgress struct {
	dlg  zenity.ProgressDialog
	last int
}

func (p *dialogProgress) Report(percent int) {
	if percent == p.last {
		return
	}
	p.last = percent
	_ = p.dlg.Value(percent)
}

func (p *dialogProgress) Close() {
	_ = p.dlg.Complete()
	_ = p.dlg.Close()
}
