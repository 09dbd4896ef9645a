package tui

import (
	"strings"
	"testing"

	"crawler-dashboard/pkg/bulk"
	"crawler-dashboard/pkg/cli/dashboard"
	"crawler-dashboard/pkg/cli/tui/manageurls"
)

func TestRootMenuNavigation(t *testing.T) {
	api := &fakeAPI{items: seed(2)}
	root := NewRootModel(dashboard.NewOps(api, bulk.StopOnFirstError)).(*rootModel)

	root.Init()
	if root.current == nil {
		t.Fatal("root should open the dashboard on start")
	}

	root.Update(MenuNavigationMsg{})
	if root.current != nil {
		t.Fatal("MenuNavigationMsg should return to the menu")
	}
	if !strings.Contains(root.View(), "Select an action:") {
		t.Error("menu should be rendered")
	}

	root.Update(keys("?"))
	if !strings.Contains(root.View(), "Dashboard / Add URL") {
		t.Error("? should show the menu help")
	}
	root.Update(keys("x"))

	root.Update(keys("2"))
	frame, ok := root.current.(*Frame)
	if !ok {
		t.Fatalf("current = %T, want *Frame", root.current)
	}
	if _, ok := frame.model.(*addURLForm); !ok {
		t.Errorf("option 2 should open the add form, got %T", frame.model)
	}
}

func TestAddURLFormSubmits(t *testing.T) {
	api := &fakeAPI{}
	frame := NewAddURLForm(dashboard.NewOps(api, bulk.StopOnFirstError)).(*Frame)
	form := frame.model.(*addURLForm)

	// m is menu navigation only outside the input; here it is typed
	frame.Update(keys("https://example.com/m"))
	_, cmd := frame.Update(keys("enter"))
	if form.step != stepSubmitting || cmd == nil {
		t.Fatal("enter should submit the URL")
	}

	msg, ok := cmd().(manageurls.ResultMsg)
	if !ok {
		t.Fatal("submit should produce a ResultMsg")
	}
	frame.Update(msg)

	if form.created == nil || form.created.URL != "https://example.com/m" {
		t.Fatalf("created = %+v", form.created)
	}
	if !strings.Contains(form.View(), "Queued https://example.com/m") {
		t.Errorf("view = %q", form.View())
	}
}

func TestAddURLFormRejectsInvalid(t *testing.T) {
	frame := NewAddURLForm(dashboard.NewOps(&fakeAPI{}, bulk.StopOnFirstError)).(*Frame)
	form := frame.model.(*addURLForm)

	frame.Update(keys("ftp://example.com"))
	_, cmd := frame.Update(keys("enter"))
	frame.Update(cmd())

	if form.err == nil {
		t.Fatal("ftp URL should be rejected")
	}
	if !strings.Contains(form.View(), "failed to add URL") {
		t.Errorf("view = %q", form.View())
	}

	frame.Update(keys("x"))
	if form.step != stepURLInput || form.input.Value() != "ftp://example.com" {
		t.Error("after an error the input should be kept for editing")
	}
}
