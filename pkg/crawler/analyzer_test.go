package crawler

import (
	"net/url"
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title> Example Domain </title></head>
<body>
  <h1>Main</h1>
  <h2>One</h2><h2>Two</h2>
  <h6>Tiny</h6>
  <a href="/about">about</a>
  <a href="https://example.com/contact#team">contact</a>
  <a href="https://other.org/">other</a>
  <a href="#top">top</a>
  <a href="mailto:someone@example.com">mail</a>
  <a href="javascript:void(0)">js</a>
  <a href="tel:+123">call</a>
  <a href="">empty</a>
  <a href="/about">about again</a>
  <form action="/session"><input type="PASSWORD" name="pw"></form>
</body>
</html>`

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestAnalyze(t *testing.T) {
	a, err := Analyze(strings.NewReader(samplePage), mustParse(t, "https://example.com/page"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if a.HTMLVersion != "HTML5" {
		t.Errorf("html version = %q, want HTML5", a.HTMLVersion)
	}
	if a.Title != "Example Domain" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Headings.H1 != 1 || a.Headings.H2 != 2 || a.Headings.H3 != 0 || a.Headings.H6 != 1 {
		t.Errorf("headings = %+v", a.Headings)
	}
	if a.InternalLinks != 3 || a.ExternalLinks != 1 {
		t.Errorf("internal = %d, external = %d, want 3 and 1", a.InternalLinks, a.ExternalLinks)
	}
	want := []string{"https://example.com/about", "https://example.com/contact", "https://other.org/"}
	if strings.Join(a.Links, " ") != strings.Join(want, " ") {
		t.Errorf("links = %v, want %v", a.Links, want)
	}
	if !a.HasLoginForm {
		t.Error("password input should count as a login form")
	}
}

func TestHTMLVersion(t *testing.T) {
	tests := []struct {
		doctype string
		want    string
	}{
		{`<!DOCTYPE html>`, "HTML5"},
		{`<!doctype HTML>`, "HTML5"},
		{`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`, "HTML 4.01"},
		{`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`, "XHTML 1.0"},
		{`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">`, "XHTML 1.1"},
		{``, "Unknown"},
	}

	for _, tt := range tests {
		page := tt.doctype + "<html><head><title>t</title></head><body></body></html>"
		a, err := Analyze(strings.NewReader(page), mustParse(t, "http://example.com"))
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if a.HTMLVersion != tt.want {
			t.Errorf("doctype %q: got %q, want %q", tt.doctype, a.HTMLVersion, tt.want)
		}
	}
}

func TestLoginFormDetection(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{`<form action="/users/login" method="post"><input name="u"></form>`, true},
		{`<form id="LoginForm"><input name="u"></form>`, true},
		{`<form action="/search"><input type="text" name="q"></form>`, false},
		{`<div>login here</div>`, false},
	}

	for _, tt := range tests {
		a, err := Analyze(strings.NewReader("<html><body>"+tt.body+"</body></html>"), mustParse(t, "http://example.com"))
		if err != nil {
			t.Fatal(err)
		}
		if a.HasLoginForm != tt.want {
			t.Errorf("%s: got %v, want %v", tt.body, a.HasLoginForm, tt.want)
		}
	}
}

func TestHostComparisonIgnoresCase(t *testing.T) {
	page := `<a href="https://EXAMPLE.com/x">x</a><a href="http://example.com:8080/y">y</a><a href="https://sub.example.com/">sub</a>`
	a, err := Analyze(strings.NewReader(page), mustParse(t, "https://example.com/"))
	if err != nil {
		t.Fatal(err)
	}
	if a.InternalLinks != 2 || a.ExternalLinks != 1 {
		t.Errorf("internal = %d, external = %d, want 2 and 1", a.InternalLinks, a.ExternalLinks)
	}
}
