package tui

import (
	"strings"

	"github.com/MKhiriev/mindcraft-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// PageFactory builds a fresh page for a matched route.
type PageFactory func(params RouteParams) tea.Model

// scopedMsg is a message produced by a command of the page mounted under
// scope. Messages of an unmounted page are dropped by the router.
type scopedMsg struct {
	scope uint64
	msg   tea.Msg
}

// pageCloser is implemented by pages that own background work which must
// stop when they are unmounted.
type pageCloser interface {
	Close()
}

// textCapturer is implemented by pages whose focused input consumes
// printable keys.
type textCapturer interface {
	CapturesText() bool
}

// RootModel is a TUI router:
// 1) keeps the active page and its scope
// 2) handles global hotkeys (ctrl+c, f1, f2, v)
// 3) handles NavigateTo messages by mounting a fresh page
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]PageFactory
	route   string
	path    string
	current tea.Model
	scope   uint64

	width  int
	height int

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and mounts startPath.
func NewRootModel(pages map[string]PageFactory, startPath string, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		pages:     pages,
		buildInfo: buildInfo,
	}
	r, _ = r.mount(startPath)
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return scoped(r.scope, r.current.Init())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case scopedMsg:
		if m.scope != r.scope {
			return r, nil
		}
		msg = m.msg
	case tea.WindowSizeMsg:
		r.width, r.height = m.Width, m.Height
	}

	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			r.closeCurrent()
			return r, tea.Quit
		case "f1":
			return r.navigate(RouteUpload)
		case "f2":
			return r.navigate(RouteDashboard)
		case "v":
			if r.route == RouteUpload && !r.capturesText() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav.Path)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, scoped(r.scope, cmd)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}

	var b strings.Builder
	b.WriteString(renderTitleBar(r.route))
	b.WriteString("\n\n")
	if r.current == nil {
		b.WriteString(renderPage("NOT FOUND", "", ""))
	} else {
		b.WriteString(r.current.View())
	}
	return appStyle.Render(b.String())
}

// Path returns the path of the mounted page.
func (r RootModel) Path() string {
	return r.path
}

// QuitByUser reports whether the program ended on ctrl+c.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}

func (r RootModel) navigate(path string) (tea.Model, tea.Cmd) {
	next, mounted := r.mount(path)
	if !mounted {
		return r, nil
	}

	cmds := []tea.Cmd{next.current.Init()}
	if next.width > 0 || next.height > 0 {
		size := tea.WindowSizeMsg{Width: next.width, Height: next.height}
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return next, scoped(next.scope, tea.Batch(cmds...))
}

// mount replaces the current page with a fresh instance for path. Unknown
// paths leave the router unchanged.
func (r RootModel) mount(path string) (RootModel, bool) {
	route, params, ok := matchRoute(path)
	if !ok {
		return r, false
	}
	factory, ok := r.pages[route]
	if !ok || factory == nil {
		return r, false
	}

	r.closeCurrent()
	r.scope++
	r.route = route
	r.path = path
	r.current = factory(params)
	r.showBuildInfo = false
	return r, true
}

func (r RootModel) closeCurrent() {
	if c, ok := r.current.(pageCloser); ok {
		c.Close()
	}
}

func (r RootModel) capturesText() bool {
	c, ok := r.current.(textCapturer)
	return ok && c.CapturesText()
}

// scoped tags every message produced by cmd with scope. Batches are
// unfolded so each inner command is tagged too; quit passes through.
func scoped(scope uint64, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		switch msg := cmd().(type) {
		case nil:
			return nil
		case tea.QuitMsg:
			return msg
		case tea.BatchMsg:
			batch := make(tea.BatchMsg, 0, len(msg))
			for _, c := range msg {
				if c != nil {
					batch = append(batch, scoped(scope, c))
				}
			}
			return batch
		default:
			return scopedMsg{scope: scope, msg: msg}
		}
	}
}

func navigateCmd(path string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Path: path} }
}
