package logger

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestLogBeforeInitIsDiscarded(t *testing.T) {
	Log("nothing %d", 1)
	LogError(errors.New("x"), "nothing")
}

func TestInitWritesToFile(t *testing.T) {
	path, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	Log("fetched %d urls", 3)
	LogError(errors.New("boom"), "delete id %d", 2)
	CloseLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"fetched 3 urls", "delete id 2", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
