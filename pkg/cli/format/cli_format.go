package format

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"crawler-dashboard/pkg/bulk"
	"crawler-dashboard/pkg/models"
	"crawler-dashboard/pkg/urllist"
)

// Table formats one page of the list as a table for CLI output
func Table(page urllist.Page) string {
	if page.Total == 0 {
		return "No URLs found.\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tURL\tStatus\tTitle\tHTML\tInt\tExt\tBroken\tLogin")
	fmt.Fprintln(w, "───\t───\t───\t───\t───\t───\t───\t───\t───")

	if page.Empty() {
		fmt.Fprintln(w, "\tNo results found.\t\t\t\t\t\t\t")
	}
	for _, row := range page.Rows {
		item := row.Item
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID,
			TruncateURL(item.URL, 50),
			item.Status,
			TruncateURL(Title(item), 40),
			OptString(item.HTMLVersion),
			OptInt(item.InternalLinks),
			OptInt(item.ExternalLinks),
			OptInt(item.BrokenLinks),
			OptBool(item.HasLoginForm),
		)
	}
	w.Flush()

	b.WriteString("\n")
	b.WriteString(PageSummary(page))
	b.WriteString("\n")
	return b.String()
}

// PageSummary is the "Page x of y" line under the list
func PageSummary(page urllist.Page) string {
	return fmt.Sprintf("Page %d of %d · %d of %d URL(s)", page.Number, page.TotalPages, page.Matched, page.Total)
}

// Created formats the confirmation printed after adding a URL
func Created(item *models.URLItem) string {
	var b strings.Builder
	b.WriteString("✓ URL queued for crawling\n\n")
	b.WriteString(fmt.Sprintf("  ID:     %d\n", item.ID))
	b.WriteString(fmt.Sprintf("  URL:    %s\n", item.URL))
	b.WriteString(fmt.Sprintf("  Status: %s\n", item.Status))
	return b.String()
}

// Detail formats every field of a crawled URL, its heading counts and broken links
func Detail(d *models.URLDetail) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%d\n", d.ID)
	fmt.Fprintf(w, "URL:\t%s\n", d.URL)
	fmt.Fprintf(w, "Status:\t%s\n", d.Status)
	fmt.Fprintf(w, "Title:\t%s\n", OptString(d.Title))
	fmt.Fprintf(w, "HTML version:\t%s\n", OptString(d.HTMLVersion))
	fmt.Fprintf(w, "Internal links:\t%s\n", OptInt(d.InternalLinks))
	fmt.Fprintf(w, "External links:\t%s\n", OptInt(d.ExternalLinks))
	fmt.Fprintf(w, "Broken links:\t%s\n", OptInt(d.BrokenLinks))
	fmt.Fprintf(w, "Login form:\t%s\n", OptBool(d.HasLoginForm))
	fmt.Fprintf(w, "Created:\t%s\n", Date(d.CreatedAt))
	w.Flush()

	if d.Headings != nil {
		h := d.Headings
		b.WriteString(fmt.Sprintf("\nHeadings: h1 %d · h2 %d · h3 %d · h4 %d · h5 %d · h6 %d\n",
			h.H1, h.H2, h.H3, h.H4, h.H5, h.H6))
	}

	b.WriteString("\n")
	if len(d.BrokenLinksList) == 0 {
		b.WriteString("No broken links.\n")
		return b.String()
	}
	b.WriteString("Broken links:\n")
	for _, l := range d.BrokenLinksList {
		code := strconv.Itoa(l.StatusCode)
		if l.StatusCode == 0 {
			code = "unreachable"
		}
		b.WriteString(fmt.Sprintf("  [%s] %s\n", code, l.BrokenURL))
	}
	return b.String()
}

// Outcome summarizes a bulk action
func Outcome(verb string, o *bulk.Outcome) string {
	if o == nil {
		return ""
	}
	s := fmt.Sprintf("%s %d URL(s)", verb, len(o.Completed))
	if len(o.Failed) > 0 {
		s += fmt.Sprintf(", %d failed", len(o.Failed))
	}
	if len(o.Skipped) > 0 {
		s += fmt.Sprintf(", %d skipped", len(o.Skipped))
	}
	return s
}
