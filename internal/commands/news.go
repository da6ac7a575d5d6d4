package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"workable/internal/auth"
	"workable/internal/config"
	"workable/internal/exitcode"
	"workable/internal/output"
	"workable/internal/service"
)

// newsCategories are the categories the backend serves.
var newsCategories = map[string]bool{
	"technology":    true,
	"business":      true,
	"sports":        true,
	"entertainment": true,
	"health":        true,
	"science":       true,
	"general":       true,
}

func init() {
	Register(&NewsCmd{})
}

// NewsCmd implements the news command. Pages are 0-based, matching the
// backend's convention.
type NewsCmd struct {
	page int
	size int
}

// SetPage sets the page number (for testing).
func (c *NewsCmd) SetPage(page int) {
	c.page = page
}

// SetSize sets the page size (for testing).
func (c *NewsCmd) SetSize(size int) {
	c.size = size
}

func (c *NewsCmd) Name() string      { return "news" }
func (c *NewsCmd) Aliases() []string { return nil }
func (c *NewsCmd) Synopsis() string  { return "Show the news feed" }
func (c *NewsCmd) Usage() string     { return "workable news [--page <n>] [--size <n>] [category]" }
func (c *NewsCmd) NeedsAuth() bool   { return false }

func (c *NewsCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.page, "page", 0, "")
	fs.IntVar(&c.size, "size", 6, "")
}

func (c *NewsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int {
	if c.page < 0 {
		fmt.Fprintf(errOut, "error: invalid page number: %d\n", c.page)
		return exitcode.UserError
	}
	if c.size < 1 {
		fmt.Fprintf(errOut, "error: invalid page size: %d\n", c.size)
		return exitcode.UserError
	}

	category := ""
	if len(args) > 0 {
		category = strings.ToLower(strings.Join(args, " "))
		if category == "all" {
			category = ""
		} else if !newsCategories[category] {
			fmt.Fprintf(errOut, "error: unknown category: %s\n", category)
			return exitcode.UserError
		}
	}

	page, err := svc.News(ctx, category, c.page, c.size)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if len(page.Items) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no articles found")
		}
		return exitcode.Success
	}

	for _, item := range page.Items {
		output.FormatNewsItem(out, item)
	}
	if !page.Last && !cfg.Quiet {
		fmt.Fprintf(out, "more available (--page %d)\n", c.page+1)
	}
	return exitcode.Success
}
