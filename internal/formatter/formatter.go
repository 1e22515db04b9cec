// package formatter provides functions to export list collections to various formats (CSV, Markdown, plain text, JSON, YAML)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/desertthunder/listmerge/internal/models"
	"github.com/desertthunder/listmerge/internal/services"
	"github.com/desertthunder/listmerge/internal/shared"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Format names an export format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatMarkdown, FormatCSV, FormatJSON, FormatYAML}

// ParseFormat accepts a format name or a common alias ("md", "txt", "yml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt", "plain":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, s)
	}
}

// Export renders lists in the given format.
func Export(lists models.ListCollection, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return ExportToText(lists)
	case FormatMarkdown:
		return ExportToMarkdown(lists)
	case FormatCSV:
		return ExportToCSV(lists)
	case FormatJSON:
		return ExportToJSON(lists, true)
	case FormatYAML:
		return ExportToYAML(lists)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// ExportToCSV converts lists to CSV format with columns: List, ID, Name, Description
func ExportToCSV(lists models.ListCollection) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"List", "ID", "Name", "Description"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, n := range lists.Keys() {
		for _, item := range lists[n] {
			record := []string{strconv.Itoa(n), string(item.ID), item.Name, item.Description}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts lists to Markdown with one section per list
func ExportToMarkdown(lists models.ListCollection) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Lists\n\n")
	buf.WriteString(fmt.Sprintf("**Lists**: %s\n", humanize.Comma(int64(len(lists)))))
	buf.WriteString(fmt.Sprintf("**Items**: %s\n", humanize.Comma(int64(lists.Count()))))

	for _, n := range lists.Keys() {
		buf.WriteString(fmt.Sprintf("\n## List %d\n\n", n))
		if len(lists[n]) == 0 {
			buf.WriteString("_empty_\n")
			continue
		}
		for _, item := range lists[n] {
			if item.Description != "" {
				buf.WriteString(fmt.Sprintf("- **%s**: %s\n", escapeMarkdown(item.Name), escapeMarkdown(item.Description)))
			} else {
				buf.WriteString(fmt.Sprintf("- **%s**\n", escapeMarkdown(item.Name)))
			}
		}
	}

	return buf.Bytes(), nil
}

// markdownEscaper backslash-escapes inline Markdown syntax and folds line breaks into spaces.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`,
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`, "|", `\|`, "~", `\~`,
	"\r\n", " ", "\n", " ", "\r", " ",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// ExportToText converts lists to plain text format
func ExportToText(lists models.ListCollection) ([]byte, error) {
	var buf bytes.Buffer

	for i, n := range lists.Keys() {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(fmt.Sprintf("List %d (%s)\n", n, ItemCount(len(lists[n]))))
		for j, item := range lists[n] {
			buf.WriteString(fmt.Sprintf("  %d. %s", j+1, item.Name))
			if item.Description != "" {
				buf.WriteString(" - " + item.Description)
			}
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts lists to the data source shape, so an export can be served back as a source.
func ExportToJSON(lists models.ListCollection, pretty bool) ([]byte, error) {
	data, err := services.EncodeLists(lists.Records(), pretty)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

type yamlList struct {
	Number int           `yaml:"number"`
	Items  []models.Item `yaml:"items"`
}

// ExportToYAML converts lists to a YAML sequence of {number, items}
func ExportToYAML(lists models.ListCollection) ([]byte, error) {
	out := make([]yamlList, 0, len(lists))
	for _, n := range lists.Keys() {
		items := lists[n]
		if items == nil {
			items = []models.Item{}
		}
		out = append(out, yamlList{Number: n, Items: items})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// ItemCount formats n as "1 item" / "1,204 items".
func ItemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return humanize.Comma(int64(n)) + " items"
}

// RenderMarkdown renders markdown for the terminal with glamour, wrapped at width.
//
// Uses a fixed style: auto-detection queries the terminal and can block.
func RenderMarkdown(md []byte, width int, style string) (string, error) {
	if width < 20 {
		width = 20
	}
	if style == "" {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(string(md))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// WriteExport writes lists to path in format, creating parent directories.
//
// An empty path defaults to lists.<ext>.
func WriteExport(lists models.ListCollection, format Format, path string) (string, error) {
	if path == "" {
		path = "lists." + Extension(format)
	}

	data, err := Export(lists, format)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", format, err)
	}

	return path, nil
}

// Extension returns the file extension for format.
func Extension(format Format) string {
	switch format {
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	default:
		return string(format)
	}
}
