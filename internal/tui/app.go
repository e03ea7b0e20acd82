// Package tui provides a terminal user interface for cipherlist.
package tui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cipherlist/cipherlist/internal/provider"
	"github.com/cipherlist/cipherlist/internal/resolver"
)

// App represents the TUI application.
type App struct {
	app         *tview.Application
	pages       *tview.Pages
	resolver    *resolver.Resolver
	queueUpdate func(func())
	run         func() error

	// Main layout
	suiteList   *tview.Table
	detailTree  *tview.TreeView
	statusBar   *tview.TextView
	exprInput   *tview.InputField
	mainContent *tview.Flex

	// State
	entries     []resolver.Entry
	selectedIdx int
	expr        string
	mu          sync.RWMutex
}

// New creates a new TUI application over a resolver.
func New(r *resolver.Resolver) *App {
	a := &App{
		app:      tview.NewApplication(),
		pages:    tview.NewPages(),
		resolver: r,
	}

	a.queueUpdate = func(fn func()) {
		a.app.QueueUpdateDraw(fn)
	}
	a.run = a.app.Run

	a.setupUI()
	return a
}

func (a *App) setupUI() {
	// Create suite list table
	a.suiteList = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0).
		SetSeparator(tview.Borders.Vertical)

	a.suiteList.SetBorder(true).SetTitle(" Suites ")
	a.setupSuiteListHeader()

	// Handle suite selection
	a.suiteList.SetSelectionChangedFunc(func(row, col int) {
		if row > 0 {
			a.onSuiteSelected(row - 1)
		}
	})

	// Create detail tree view
	root := tview.NewTreeNode("Suite Details")
	a.detailTree = tview.NewTreeView().SetRoot(root)
	a.detailTree.SetBorder(true).SetTitle(" Details ")

	// Create status bar
	a.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.updateStatus("Ready")

	// Create expression input
	a.exprInput = tview.NewInputField().
		SetLabel("Expression: ").
		SetFieldWidth(50).
		SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEnter {
				a.applyExpression(a.exprInput.GetText())
				a.app.SetFocus(a.suiteList)
			} else if key == tcell.KeyEscape {
				a.exprInput.SetText(a.expr)
				a.app.SetFocus(a.suiteList)
			}
		})

	// Create main content area
	a.mainContent = tview.NewFlex().
		AddItem(a.suiteList, 0, 2, true).
		AddItem(a.detailTree, 0, 1, false)

	// Create top bar with expression input
	topBar := tview.NewFlex().
		AddItem(a.exprInput, 0, 1, false)

	// Create main layout
	mainLayout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topBar, 1, 0, false).
		AddItem(a.mainContent, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.pages.AddPage("main", mainLayout, true, true)

	// Set up key bindings
	a.setupKeyBindings()
}

func (a *App) setupSuiteListHeader() {
	headers := []string{"Alias", "Kx", "Au", "Enc", "Mac", "Proto", "Strength"}
	for i, h := range headers {
		cell := tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1)
		a.suiteList.SetCell(0, i, cell)
	}
}

func (a *App) setupKeyBindings() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			a.showHelp()
			return nil
		case tcell.KeyCtrlC:
			a.app.Stop()
			return nil
		case tcell.KeyCtrlF:
			a.app.SetFocus(a.exprInput)
			return nil
		case tcell.KeyTab:
			a.focusNextPane()
			return nil
		case tcell.KeyEscape:
			if a.app.GetFocus() == a.exprInput {
				a.app.SetFocus(a.suiteList)
				return nil
			}
		}

		if a.app.GetFocus() == a.exprInput {
			return event
		}

		// Handle vim-style navigation
		switch event.Rune() {
		case 'q':
			a.app.Stop()
			return nil
		case '?':
			a.showHelp()
			return nil
		case '/':
			a.app.SetFocus(a.exprInput)
			return nil
		case 'j':
			return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
		case 'k':
			return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
		case 'g':
			a.suiteList.Select(1, 0)
			return nil
		case 'G':
			a.suiteList.Select(a.suiteList.GetRowCount()-1, 0)
			return nil
		}

		return event
	})
}

// applyExpression resolves an expression and refreshes the suite list.
func (a *App) applyExpression(expr string) {
	entries := a.resolver.CrossReference(expr)

	a.mu.Lock()
	a.expr = expr
	a.entries = entries
	a.selectedIdx = 0
	a.mu.Unlock()

	a.refreshSuiteList()
	a.updateStatus(fmt.Sprintf("%d suites for %q", len(entries), expr))
}

func (a *App) refreshSuiteList() {
	a.mu.RLock()
	entries := a.entries
	a.mu.RUnlock()

	// Clear all rows but the header
	for a.suiteList.GetRowCount() > 1 {
		a.suiteList.RemoveRow(1)
	}

	for i, e := range entries {
		r := e.Record
		cols := []string{
			r.Alias,
			r.Kx.String(),
			r.Au.String(),
			r.Enc.String(),
			r.Mac.String(),
			r.Protocols.String(),
			r.Strength.String(),
		}
		for j, text := range cols {
			cell := tview.NewTableCell(text).SetExpansion(1)
			if j == 0 {
				cell.SetTextColor(tcell.ColorAqua)
			}
			a.suiteList.SetCell(i+1, j, cell)
		}
	}

	if len(entries) > 0 {
		a.suiteList.Select(1, 0)
		a.onSuiteSelected(0)
	} else {
		a.detailTree.SetRoot(tview.NewTreeNode("No suites"))
	}
}

func (a *App) onSuiteSelected(idx int) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if idx < 0 || idx >= len(a.entries) {
		return
	}
	a.selectedIdx = idx
	a.updateDetailTree(a.entries[idx])
}

func (a *App) updateDetailTree(e resolver.Entry) {
	r := e.Record
	root := tview.NewTreeNode(r.Alias).SetColor(tcell.ColorWhite)

	suiteNode := tview.NewTreeNode("Suite").SetColor(tcell.ColorGreen)
	suiteNode.AddChild(tview.NewTreeNode(fmt.Sprintf("Key Exchange: %s", r.Kx)))
	suiteNode.AddChild(tview.NewTreeNode(fmt.Sprintf("Authentication: %s", r.Au)))
	suiteNode.AddChild(tview.NewTreeNode(fmt.Sprintf("Encryption: %s", r.Enc)))
	suiteNode.AddChild(tview.NewTreeNode(fmt.Sprintf("MAC: %s", r.Mac)))
	suiteNode.AddChild(tview.NewTreeNode(fmt.Sprintf("Protocols: %s", r.Protocols)))
	suiteNode.AddChild(tview.NewTreeNode(fmt.Sprintf("Strength: %s", r.Strength)))
	if r.Export {
		suiteNode.AddChild(tview.NewTreeNode("Export grade"))
	}
	root.AddChild(suiteNode)

	if len(r.StandardNames) > 0 {
		namesNode := tview.NewTreeNode("Standard Names").SetColor(tcell.ColorGreen)
		for _, name := range r.StandardNames {
			namesNode.AddChild(tview.NewTreeNode(name))
		}
		root.AddChild(namesNode)
	}

	providersNode := tview.NewTreeNode("Providers").SetColor(tcell.ColorGreen)
	for _, m := range e.Mappings {
		var node *tview.TreeNode
		switch m.Outcome {
		case provider.Mapped:
			node = tview.NewTreeNode(fmt.Sprintf("%s: %s", m.Provider, m.StandardName))
		case provider.KnownUnsupported:
			node = tview.NewTreeNode(fmt.Sprintf("%s: not implemented", m.Provider)).
				SetColor(tcell.ColorGray)
		default:
			node = tview.NewTreeNode(fmt.Sprintf("%s: UNEXPECTED", m.Provider)).
				SetColor(tcell.ColorRed)
		}
		providersNode.AddChild(node)
	}
	root.AddChild(providersNode)

	a.detailTree.SetRoot(root)
}

func (a *App) focusNextPane() {
	switch a.app.GetFocus() {
	case a.suiteList:
		a.app.SetFocus(a.detailTree)
	case a.detailTree:
		a.app.SetFocus(a.exprInput)
	default:
		a.app.SetFocus(a.suiteList)
	}
}

func (a *App) updateStatus(msg string) {
	a.statusBar.SetText(fmt.Sprintf("[yellow]%s[-]  q:quit  /:expression  ?:help", msg))
}

func (a *App) showHelp() {
	help := `Key bindings:

  /        edit the cipher-list expression
  Enter    resolve the expression
  j/k      move selection
  g/G      first/last suite
  Tab      cycle panes
  ?        this help
  q        quit

Press Escape to close.`

	modal := tview.NewModal().
		SetText(help).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(int, string) {
			a.pages.RemovePage("help")
			a.app.SetFocus(a.suiteList)
		})
	a.pages.AddPage("help", modal, true, true)
}

// Run starts the application event loop.
func (a *App) Run() error {
	a.app.SetRoot(a.pages, true)
	return a.run()
}
