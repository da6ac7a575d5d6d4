// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"workable/internal/service"
)

// stripPolicy removes every HTML element; news descriptions arrive as
// article markup and only the text belongs on a terminal.
var stripPolicy = bluemonday.StrictPolicy()

// FormatTask formats one task line.
// Format: "{ID:>6}  {[x]| [ ]} {priority:<6}  {TITLE}  ({date})"
func FormatTask(w io.Writer, task service.Task) {
	box := "[ ]"
	if task.Completed {
		box = "[x]"
	}
	line := fmt.Sprintf("%6s  %s %-6s  %s", task.ID, box, strings.ToLower(string(task.Priority)), normalizeTitle(task.Title))
	if !task.CreatedAt.IsZero() {
		line += "  (" + task.CreatedAt.Format("2006-01-02") + ")"
	}
	fmt.Fprintln(w, line)
}

// FormatWeather formats a weather report.
func FormatWeather(w io.Writer, wx service.Weather) {
	fmt.Fprintf(w, "%s, %s\n", wx.City, wx.Country)
	fmt.Fprintf(w, "  %.1f°C (feels like %.1f°C)  %s\n", wx.Temperature, wx.FeelsLike, wx.Description)
	fmt.Fprintf(w, "  humidity %d%%  wind %.1f m/s\n", wx.Humidity, wx.WindSpeed)
}

// FormatNewsItem formats one article: a headline line and an optional
// indented description with any HTML stripped.
func FormatNewsItem(w io.Writer, item service.NewsItem) {
	headline := normalizeTitle(item.Title)
	meta := strings.ToLower(item.Category)
	if item.Source != "" {
		meta = item.Source + ", " + meta
	}
	if !item.PublishedAt.IsZero() {
		meta += ", " + item.PublishedAt.Format("2006-01-02")
	}
	fmt.Fprintf(w, "* %s [%s]\n", headline, meta)

	if desc := PlainText(item.Description); desc != "" {
		fmt.Fprintf(w, "    %s\n", desc)
	}
	if item.SourceURL != "" {
		fmt.Fprintf(w, "    %s\n", item.SourceURL)
	}
}

// PlainText strips HTML tags and entities from s for terminal display.
func PlainText(s string) string {
	stripped := stripPolicy.Sanitize(s)
	stripped = html.UnescapeString(stripped)
	return strings.Join(strings.Fields(stripped), " ")
}

// normalizeTitle normalizes a title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
