package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/cipherlist/cipherlist/internal/resolver"
)

func newTestApp() *App {
	return New(resolver.Default(nil))
}

func TestNew(t *testing.T) {
	app := newTestApp()
	if app == nil {
		t.Fatal("New() returned nil")
	}

	if app.app == nil {
		t.Error("TUI app should not be nil")
	}

	if app.pages == nil {
		t.Error("Pages should not be nil")
	}

	if app.resolver == nil {
		t.Error("Resolver should not be nil")
	}

	if app.suiteList == nil {
		t.Error("Suite list should not be nil")
	}

	if app.detailTree == nil {
		t.Error("Detail tree should not be nil")
	}
}

func TestApp_SuiteListHeader(t *testing.T) {
	app := newTestApp()

	headers := []string{"Alias", "Kx", "Au", "Enc", "Mac", "Proto", "Strength"}
	for i, want := range headers {
		cell := app.suiteList.GetCell(0, i)
		if cell == nil || cell.Text != want {
			t.Errorf("header %d = %v, want %s", i, cell, want)
		}
	}
}

func TestApp_ApplyExpression(t *testing.T) {
	app := newTestApp()

	app.applyExpression("RC4-SHA:AES128-SHA")

	if len(app.entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(app.entries))
	}
	if app.expr != "RC4-SHA:AES128-SHA" {
		t.Errorf("expr = %q", app.expr)
	}

	// Header plus one row per suite.
	if got := app.suiteList.GetRowCount(); got != 3 {
		t.Errorf("suite list has %d rows, want 3", got)
	}
	if cell := app.suiteList.GetCell(1, 0); cell.Text != "RC4-SHA" {
		t.Errorf("first row alias = %q", cell.Text)
	}
	if cell := app.suiteList.GetCell(2, 0); cell.Text != "AES128-SHA" {
		t.Errorf("second row alias = %q", cell.Text)
	}
}

func TestApp_ApplyExpressionEmptyResult(t *testing.T) {
	app := newTestApp()

	app.applyExpression("NONESUCH")

	if len(app.entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(app.entries))
	}
	if got := app.suiteList.GetRowCount(); got != 1 {
		t.Errorf("suite list has %d rows, want header only", got)
	}
	if root := app.detailTree.GetRoot(); root == nil || root.GetText() != "No suites" {
		t.Error("detail tree should show the empty placeholder")
	}
}

func TestApp_DetailTree(t *testing.T) {
	app := newTestApp()

	app.applyExpression("AES128-SHA")

	root := app.detailTree.GetRoot()
	if root == nil {
		t.Fatal("detail tree has no root")
	}
	if root.GetText() != "AES128-SHA" {
		t.Errorf("root = %q", root.GetText())
	}

	var sections []string
	for _, child := range root.GetChildren() {
		sections = append(sections, child.GetText())
	}
	for _, want := range []string{"Suite", "Standard Names", "Providers"} {
		found := false
		for _, s := range sections {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing %q section, have %v", want, sections)
		}
	}
}

func TestApp_DetailTreeUnsupported(t *testing.T) {
	app := newTestApp()

	// SEED-SHA is mapped by Oracle but not implemented by IBM.
	app.applyExpression("SEED-SHA")

	root := app.detailTree.GetRoot()
	var texts []string
	for _, child := range root.GetChildren() {
		if child.GetText() == "Providers" {
			for _, n := range child.GetChildren() {
				texts = append(texts, n.GetText())
			}
		}
	}

	foundUnsupported := false
	for _, text := range texts {
		if strings.Contains(text, "IBM") && strings.Contains(text, "not implemented") {
			foundUnsupported = true
		}
	}
	if !foundUnsupported {
		t.Errorf("provider nodes %v should flag IBM as not implemented", texts)
	}
}

func TestApp_OnSuiteSelected_OutOfRange(t *testing.T) {
	app := newTestApp()
	app.applyExpression("RC4-SHA")

	// Out-of-range indices must not panic or move the selection.
	app.onSuiteSelected(-1)
	app.onSuiteSelected(99)

	if app.selectedIdx != 0 {
		t.Errorf("selectedIdx = %d, want 0", app.selectedIdx)
	}
}

func TestApp_ShowHelp(t *testing.T) {
	app := newTestApp()

	app.showHelp()

	if !app.pages.HasPage("help") {
		t.Error("help page should be added")
	}
}

func TestRun_WithStub(t *testing.T) {
	origRunApp := runApp
	defer func() { runApp = origRunApp }()

	var got *App
	runApp = func(app *App) error {
		got = app
		return nil
	}

	if err := Run(resolver.Default(nil), "RC4-SHA", "dark"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got == nil {
		t.Fatal("runApp was not invoked")
	}
	if len(got.entries) != 1 {
		t.Errorf("initial expression was not applied, entries = %d", len(got.entries))
	}
}

func TestRun_PropagatesError(t *testing.T) {
	origRunApp := runApp
	defer func() { runApp = origRunApp }()

	wantErr := errors.New("terminal unavailable")
	runApp = func(app *App) error { return wantErr }

	if err := Run(resolver.Default(nil), "", "light"); !errors.Is(err, wantErr) {
		t.Errorf("Run error = %v, want %v", err, wantErr)
	}
}
