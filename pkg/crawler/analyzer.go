package crawler

import (
	"io"
	"net/url"
	"strings"

	"crawler-dashboard/pkg/models"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Analysis is everything learned from a page without further network calls
type Analysis struct {
	HTMLVersion   string
	Title         string
	Headings      models.Headings
	InternalLinks int
	ExternalLinks int
	HasLoginForm  bool
	// Links are the distinct absolute http(s) links found on the page, in document order
	Links []string
}

// Analyze parses an HTML document fetched from pageURL
func Analyze(body io.Reader, pageURL *url.URL) (*Analysis, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		HTMLVersion: htmlVersion(doc),
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Headings: models.Headings{
			H1: doc.Find("h1").Length(),
			H2: doc.Find("h2").Length(),
			H3: doc.Find("h3").Length(),
			H4: doc.Find("h4").Length(),
			H5: doc.Find("h5").Length(),
			H6: doc.Find("h6").Length(),
		},
		HasLoginForm: hasLoginForm(doc),
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		link, ok := resolveLink(pageURL, href)
		if !ok {
			return
		}
		if strings.EqualFold(link.Hostname(), pageURL.Hostname()) {
			a.InternalLinks++
		} else {
			a.ExternalLinks++
		}
		key := link.String()
		if !seen[key] {
			seen[key] = true
			a.Links = append(a.Links, key)
		}
	})

	return a, nil
}

// resolveLink turns an href into an absolute http(s) URL without fragment.
// Fragment-only, mailto:, javascript:, tel: and other non-http links are skipped.
func resolveLink(base *url.URL, href string) (*url.URL, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return nil, false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	link := base.ResolveReference(ref)
	if link.Scheme != "http" && link.Scheme != "https" {
		return nil, false
	}
	if link.Host == "" {
		return nil, false
	}
	link.Fragment = ""
	return link, true
}

// htmlVersion reads the version from the doctype declaration
func htmlVersion(doc *goquery.Document) string {
	for _, root := range doc.Nodes {
		for n := root.FirstChild; n != nil; n = n.NextSibling {
			if n.Type != html.DoctypeNode {
				continue
			}
			return doctypeVersion(n)
		}
	}
	return "Unknown"
}

func doctypeVersion(n *html.Node) string {
	if !strings.EqualFold(n.Data, "html") {
		return "Unknown"
	}

	var public string
	for _, attr := range n.Attr {
		if attr.Key == "public" {
			public = strings.ToLower(attr.Val)
		}
	}

	switch {
	case public == "":
		return "HTML5"
	case strings.Contains(public, "xhtml 1.1"):
		return "XHTML 1.1"
	case strings.Contains(public, "xhtml 1.0"):
		return "XHTML 1.0"
	case strings.Contains(public, "html 4.01"):
		return "HTML 4.01"
	case strings.Contains(public, "html 4.0"):
		return "HTML 4.0"
	case strings.Contains(public, "html 3.2"):
		return "HTML 3.2"
	}
	return "Unknown"
}

// hasLoginForm reports a form whose action or id mentions login, or that asks for a password
func hasLoginForm(doc *goquery.Document) bool {
	found := false
	doc.Find("form").EachWithBreak(func(i int, form *goquery.Selection) bool {
		action, _ := form.Attr("action")
		id, _ := form.Attr("id")
		if strings.Contains(strings.ToLower(action), "login") || strings.Contains(strings.ToLower(id), "login") {
			found = true
			return false
		}
		form.Find("input").EachWithBreak(func(j int, input *goquery.Selection) bool {
			if t, _ := input.Attr("type"); strings.EqualFold(t, "password") {
				found = true
			}
			return !found
		})
		return !found
	})
	return found
}
