package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crawler-dashboard/pkg/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second)
}

func TestListURLs(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/urls" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("no auth header expected")
		}
		if r.Header.Get(RequestIDHeader) == "" {
			t.Error("missing request id header")
		}
		w.Write([]byte(`[{"id":1,"url":"https://a.com","status":"done","title":"A","broken_links":0,"has_login_form":false},{"id":2,"url":"https://b.com","status":"queued"}]`))
	})

	items, err := c.ListURLs(context.Background())
	if err != nil {
		t.Fatalf("ListURLs: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].BrokenLinks == nil || *items[0].BrokenLinks != 0 {
		t.Error("present zero should decode as a non-nil zero")
	}
	if items[1].Title != nil || items[1].BrokenLinks != nil || items[1].HasLoginForm != nil {
		t.Error("absent fields should stay nil")
	}
}

func TestListURLsNullBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})

	items, err := c.ListURLs(context.Background())
	if err != nil {
		t.Fatalf("ListURLs: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("got %v, want an empty non-nil slice", items)
	}
}

func TestCreateURL(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/urls" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body models.URLCreate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.URL != "https://new.com" {
			t.Errorf("url = %q", body.URL)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":9,"url":"https://new.com","status":"queued"}`))
	})

	item, err := c.CreateURL(context.Background(), "https://new.com")
	if err != nil {
		t.Fatalf("CreateURL: %v", err)
	}
	if item.ID != 9 || item.Status != models.StatusQueued {
		t.Errorf("got %+v", item)
	}
}

func TestActionPaths(t *testing.T) {
	var got []string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	if err := c.RefreshURL(ctx, 3); err != nil {
		t.Fatal(err)
	}
	if err := c.StopURL(ctx, 4); err != nil {
		t.Fatal(err)
	}
	if err := c.DeleteURL(ctx, 5); err != nil {
		t.Fatal(err)
	}

	want := []string{"POST /urls/3/refresh", "POST /urls/4/stop", "DELETE /urls/5"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGetURLDetail(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"url":"https://a.com","status":"done","internal_links":3,"external_links":1,"broken_links":1,
			"headings":{"h1":1,"h2":2,"h3":0,"h4":0,"h5":0,"h6":0},
			"broken_links_list":[{"broken_url":"https://a.com/x","status_code":404}]}`))
	})

	detail, err := c.GetURL(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetURL: %v", err)
	}
	if detail.ID != 7 || detail.Headings == nil || detail.Headings.H2 != 2 {
		t.Errorf("got %+v", detail)
	}
	if len(detail.BrokenLinksList) != 1 || detail.BrokenLinksList[0].StatusCode != 404 {
		t.Errorf("broken links = %+v", detail.BrokenLinksList)
	}
}

func TestStatusErrorQuotesBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"url not found"}`))
	})

	err := c.DeleteURL(context.Background(), 2)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %T, want *Error", err)
	}
	if apiErr.Type != ErrorTypeStatus || apiErr.StatusCode != 404 {
		t.Errorf("got %+v", apiErr)
	}
	if err.Error() != "API error (404): url not found" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestStatusErrorPlainBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.RefreshURL(context.Background(), 1)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Type != ErrorTypeStatus || apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("got %v, want a 502 status error", err)
	}
	if !strings.Contains(err.Error(), "502 Bad Gateway") {
		t.Errorf("message = %q, want the status text", err.Error())
	}
}

func TestDecodeError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := c.ListURLs(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Type != ErrorTypeDecode {
		t.Fatalf("got %v, want a decode error", err)
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).ListURLs(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Type != ErrorTypeNetwork {
		t.Fatalf("got %v, want a network error", err)
	}
	if apiErr.UserMessage() == "" {
		t.Error("expected a user message")
	}
}

func TestStatusErrorsFailAlike(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError} {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			w.Write([]byte(`{"error":"url is not running"}`))
		})

		err := c.StopURL(context.Background(), 1)
		var apiErr *Error
		if !errors.As(err, &apiErr) || apiErr.Type != ErrorTypeStatus || apiErr.StatusCode != code {
			t.Fatalf("%d: got %v, want a status error", code, err)
		}
		if apiErr.UserMessage() == "" {
			t.Errorf("%d: expected a user message", code)
		}
	}

	if got := newStatusError(http.StatusConflict, "url is not running").UserMessage(); got != "url is not running" {
		t.Errorf("409 message = %q, want the server text", got)
	}
	if got := newStatusError(http.StatusNotFound, "url not found").UserMessage(); !strings.Contains(got, "not found") {
		t.Errorf("404 message = %q", got)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("http://localhost:8080/", 0)
	if c.BaseURL() != "http://localhost:8080" {
		t.Errorf("base url = %q", c.BaseURL())
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v", c.httpClient.Timeout)
	}
}
