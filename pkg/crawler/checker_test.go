package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func linkServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/no-head", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte("fine"))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckerFindsBrokenLinks(t *testing.T) {
	srv := linkServer(t)

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL + "/gone"
	dead.Close()

	links := []string{
		srv.URL + "/ok",
		srv.URL + "/missing",
		srv.URL + "/no-head",
		deadURL,
		srv.URL + "/broken",
	}

	c := NewChecker(&http.Client{Timeout: 2 * time.Second}, 2)
	broken, err := c.Check(context.Background(), links)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	want := map[string]int{
		srv.URL + "/missing": 404,
		deadURL:              0,
		srv.URL + "/broken":  500,
	}
	if len(broken) != len(want) {
		t.Fatalf("got %+v, want %d broken links", broken, len(want))
	}
	// results keep input order
	order := []string{srv.URL + "/missing", deadURL, srv.URL + "/broken"}
	for i, bl := range broken {
		if bl.BrokenURL != order[i] || bl.StatusCode != want[bl.BrokenURL] {
			t.Errorf("broken[%d] = %+v", i, bl)
		}
	}
}

func TestCheckerNoLinks(t *testing.T) {
	broken, err := NewChecker(http.DefaultClient, 0).Check(context.Background(), nil)
	if err != nil || broken == nil || len(broken) != 0 {
		t.Errorf("got %v, %v; want an empty list", broken, err)
	}
}

func TestCheckerCancelled(t *testing.T) {
	srv := linkServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewChecker(http.DefaultClient, 1).Check(ctx, []string{srv.URL + "/ok"}); err == nil {
		t.Error("expected the context error")
	}
}
