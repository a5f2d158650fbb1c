// Package render turns the finalized catalog into printable SVG card
// sheets, one A4 page per sheet with a fixed grid of cards.
package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tunecard/internal/catalog"
	"tunecard/internal/logging"
	"tunecard/internal/services"
)

// A4 page size in millimeters.
const (
	pageWidth  = 210
	pageHeight = 297
)

// Options configures the sheet layout. IconPath and DesignPath are
// optional inline SVG assets; when configured they must be readable.
type Options struct {
	OutputPath string
	IconPath   string
	DesignPath string
	FontFamily string
	Columns    int
	Rows       int
}

// Renderer writes card sheets.
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// New builds a renderer.
func New(opts Options, logger *slog.Logger) *Renderer {
	return &Renderer{opts: opts, logger: logging.NewComponentLogger(logger, "render")}
}

// Render writes one SVG file per full or partial sheet and returns the
// written paths. A configured but unreadable asset aborts the run.
func (r *Renderer) Render(songs []catalog.Song) ([]string, error) {
	icon, err := loadAsset(r.opts.IconPath)
	if err != nil {
		return nil, err
	}
	design, err := loadAsset(r.opts.DesignPath)
	if err != nil {
		return nil, err
	}

	perSheet := r.opts.Columns * r.opts.Rows
	if perSheet < 1 {
		return nil, services.Wrap(services.ErrConfiguration, "render", "layout", "columns and rows must be positive", nil)
	}

	if dir := filepath.Dir(r.opts.OutputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "render", "write sheet", "create output directory", err)
		}
	}

	var paths []string
	for start := 0; start < len(songs); start += perSheet {
		end := start + perSheet
		if end > len(songs) {
			end = len(songs)
		}
		sheet := r.renderSheet(songs[start:end], icon, design)

		path := sheetPath(r.opts.OutputPath, len(paths))
		if err := os.WriteFile(path, []byte(sheet), 0o644); err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "render", "write sheet", fmt.Sprintf("write %s", path), err)
		}
		paths = append(paths, path)
	}

	r.logger.Info("sheets rendered",
		logging.Int("songs", len(songs)),
		logging.Int("sheets", len(paths)))
	return paths, nil
}

func (r *Renderer) renderSheet(songs []catalog.Song, icon, design string) string {
	cellWidth := pageWidth / r.opts.Columns
	cellHeight := pageHeight / r.opts.Rows

	var b strings.Builder
	fmt.Fprintf(&b, "<svg viewBox=\"0 0 %d %d\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\">\n", pageWidth, pageHeight)
	fmt.Fprintf(&b, "<rect fill=\"#FFFFFF\" x=\"0\" y=\"0\" width=\"%d\" height=\"%d\"/>\n", pageWidth, pageHeight)

	for i, song := range songs {
		col := i % r.opts.Columns
		row := i / r.opts.Columns
		fmt.Fprintf(&b, "<svg x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" viewBox=\"0 0 100 100\">\n",
			col*cellWidth, row*cellHeight, cellWidth, cellHeight)
		b.WriteString(r.renderCard(song, icon, design))
		b.WriteString("</svg>\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// renderCard draws one 100x100 card: year centered large, artist above,
// title below, optional design background and corner icon.
func (r *Renderer) renderCard(song catalog.Song, icon, design string) string {
	var b strings.Builder
	if design != "" {
		b.WriteString(design)
		b.WriteString("\n")
	} else {
		b.WriteString("<rect fill=\"#F2F2F2\" x=\"1\" y=\"1\" width=\"98\" height=\"98\" rx=\"4\"/>\n")
	}

	fmt.Fprintf(&b, "<text x=\"50\" y=\"38\" font-family=%q font-size=\"7\" text-anchor=\"middle\">%s</text>\n",
		r.opts.FontFamily, escapeText(song.Artist))
	fmt.Fprintf(&b, "<text x=\"50\" y=\"58\" font-family=%q font-size=\"22\" font-weight=\"bold\" text-anchor=\"middle\">%d</text>\n",
		r.opts.FontFamily, song.ReleaseYear)
	fmt.Fprintf(&b, "<text x=\"50\" y=\"74\" font-family=%q font-size=\"6\" text-anchor=\"middle\">%s</text>\n",
		r.opts.FontFamily, escapeText(song.Title))

	if icon != "" {
		b.WriteString("<svg x=\"3\" y=\"3\" width=\"10\" height=\"10\" viewBox=\"0 0 100 100\">\n")
		b.WriteString(icon)
		b.WriteString("\n</svg>\n")
	}
	return b.String()
}

// loadAsset reads an optional inline SVG fragment. An empty path is fine;
// a configured path that cannot be read is a setup failure.
func loadAsset(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, "render", "load asset", fmt.Sprintf("read %s", path), err)
	}
	return strings.TrimSpace(string(data)), nil
}

func sheetPath(base string, index int) string {
	if index == 0 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), index+1, ext)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
