package output_test

import (
	"bytes"
	"testing"
	"time"

	"workable/internal/output"
	"workable/internal/service"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		task service.Task
		want string
	}{
		{
			name: "active task",
			task: service.Task{
				ID:        "2",
				Title:     "Buy milk",
				Priority:  service.PriorityHigh,
				CreatedAt: time.Date(2025, 8, 30, 10, 15, 0, 0, time.UTC),
			},
			want: "     2  [ ] high    Buy milk  (2025-08-30)\n",
		},
		{
			name: "completed task",
			task: service.Task{
				ID:        "17",
				Title:     "Laundry",
				Priority:  service.PriorityMedium,
				Completed: true,
				CreatedAt: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
			},
			want: "    17  [x] medium  Laundry  (2025-08-01)\n",
		},
		{
			name: "no creation date",
			task: service.Task{ID: "3", Title: "Call mom", Priority: service.PriorityLow},
			want: "     3  [ ] low     Call mom\n",
		},
		{
			name: "blank title",
			task: service.Task{ID: "4", Title: "   ", Priority: service.PriorityLow},
			want: "     4  [ ] low     (untitled)\n",
		},
		{
			name: "multiline title flattened",
			task: service.Task{ID: "5", Title: "one\ntwo", Priority: service.PriorityLow},
			want: "     5  [ ] low     one two\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			output.FormatTask(&out, tt.task)
			if out.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, out.String())
			}
		})
	}
}

func TestFormatWeather(t *testing.T) {
	var out bytes.Buffer
	output.FormatWeather(&out, service.Weather{
		City:        "London",
		Country:     "GB",
		Temperature: 18.42,
		FeelsLike:   17.9,
		Humidity:    72,
		WindSpeed:   4.1,
		Description: "light rain",
	})

	want := "London, GB\n" +
		"  18.4°C (feels like 17.9°C)  light rain\n" +
		"  humidity 72%  wind 4.1 m/s\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestFormatNewsItem(t *testing.T) {
	var out bytes.Buffer
	output.FormatNewsItem(&out, service.NewsItem{
		Title:       "Go 1.26 released",
		Description: "<p>The <b>latest</b> release &amp; notes</p>",
		Source:      "wire",
		SourceURL:   "https://example.com/go-126",
		Category:    "Technology",
		PublishedAt: time.Date(2025, 8, 29, 8, 0, 0, 0, time.UTC),
	})

	want := "* Go 1.26 released [wire, technology, 2025-08-29]\n" +
		"    The latest release & notes\n" +
		"    https://example.com/go-126\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestFormatNewsItemSparse(t *testing.T) {
	var out bytes.Buffer
	output.FormatNewsItem(&out, service.NewsItem{
		Title:    "Quiet day",
		Category: "general",
	})

	want := "* Quiet day [general]\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>hello</p>", "hello"},
		{"a &amp; b", "a & b"},
		{"<script>alert(1)</script>text", "text"},
		{"  spaced \n out  ", "spaced out"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := output.PlainText(tt.in); got != tt.want {
			t.Errorf("PlainText(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
