package tui

import (
	"context"
	"errors"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/navkit/internal/application/port"
)

var ErrNilPage = errors.New("page is nil")

// NavigationStack is a pushable container showing its top page.
type NavigationStack struct {
	basePage

	stackMu sync.Mutex
	pages   []port.Page
	notify  func()
}

var _ port.NavigationContainer = (*NavigationStack)(nil)

func NewNavigationStack(typeName string) *NavigationStack {
	s := &NavigationStack{}
	s.init(s, typeName)
	return s
}

func (s *NavigationStack) setNotifier(fn func()) {
	s.stackMu.Lock()
	defer s.stackMu.Unlock()
	s.notify = fn
}

func (s *NavigationStack) changed() {
	s.stackMu.Lock()
	fn := s.notify
	s.stackMu.Unlock()
	if fn != nil {
		fn()
	}
}

func (s *NavigationStack) Push(_ context.Context, page port.Page, _ bool) error {
	if page == nil {
		return ErrNilPage
	}
	s.stackMu.Lock()
	var prev port.Page
	if n := len(s.pages); n > 0 {
		prev = s.pages[n-1]
	}
	s.pages = append(s.pages, page)
	s.stackMu.Unlock()

	if s.Visible() {
		if prev != nil {
			hidePage(prev)
		}
		showPage(page)
	}
	s.changed()
	return nil
}

// Pop removes the top page. The bottom page is never popped.
func (s *NavigationStack) Pop(_ context.Context, _ bool) (port.Page, error) {
	s.stackMu.Lock()
	n := len(s.pages)
	if n <= 1 {
		s.stackMu.Unlock()
		return nil, nil
	}
	top := s.pages[n-1]
	s.pages = s.pages[:n-1]
	next := s.pages[n-2]
	s.stackMu.Unlock()

	if s.Visible() {
		hidePage(top)
		showPage(next)
	}
	unloadPage(top)
	s.changed()
	return top, nil
}

func (s *NavigationStack) PopToRoot(_ context.Context, _ bool) error {
	s.stackMu.Lock()
	if len(s.pages) <= 1 {
		s.stackMu.Unlock()
		return nil
	}
	removed := append([]port.Page(nil), s.pages[1:]...)
	root := s.pages[0]
	s.pages = s.pages[:1]
	s.stackMu.Unlock()

	if s.Visible() {
		hidePage(removed[len(removed)-1])
		showPage(root)
	}
	for i := len(removed) - 1; i >= 0; i-- {
		unloadPage(removed[i])
	}
	s.changed()
	return nil
}

func (s *NavigationStack) Stack() []port.Page {
	s.stackMu.Lock()
	defer s.stackMu.Unlock()
	return append([]port.Page(nil), s.pages...)
}

func (s *NavigationStack) CurrentPage() port.Page {
	s.stackMu.Lock()
	defer s.stackMu.Unlock()
	if len(s.pages) == 0 {
		return nil
	}
	return s.pages[len(s.pages)-1]
}

// SendBackRequested pops the top page, or offers the request to the only page.
func (s *NavigationStack) SendBackRequested() bool {
	if len(s.Stack()) > 1 {
		page, _ := s.Pop(context.Background(), false)
		return page != nil
	}
	if current := s.CurrentPage(); current != nil {
		return current.SendBackRequested()
	}
	return false
}

func (s *NavigationStack) show() {
	s.basePage.show()
	if current := s.CurrentPage(); current != nil {
		showPage(current)
	}
}

func (s *NavigationStack) hide() {
	if current := s.CurrentPage(); current != nil {
		hidePage(current)
	}
	s.basePage.hide()
}

func (s *NavigationStack) unload() {
	s.hide()
	pages := s.Stack()
	for i := len(pages) - 1; i >= 0; i-- {
		unloadPage(pages[i])
	}
	s.basePage.unload()
}

// title names the stack after its bottom page, which labels a stack used as
// a tab.
func (s *NavigationStack) title() string {
	pages := s.Stack()
	if len(pages) > 0 {
		if n := asNode(pages[0]); n != nil {
			return n.title()
		}
	}
	return s.basePage.title()
}

func (s *NavigationStack) render(width, height int, theme *Theme) string {
	pages := s.Stack()
	if len(pages) == 0 {
		return theme.Subtle.Render("(empty)")
	}
	crumbs := make([]string, 0, len(pages))
	for _, p := range pages {
		if n := asNode(p); n != nil {
			crumbs = append(crumbs, n.title())
		} else {
			crumbs = append(crumbs, p.TypeName())
		}
	}
	header := theme.Breadcrumb.Render(strings.Join(crumbs, " › "))
	body := ""
	if n := asNode(pages[len(pages)-1]); n != nil {
		body = n.render(width, height-lipgloss.Height(header), theme)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (s *NavigationStack) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if n := asNode(s.CurrentPage()); n != nil {
		return n.handleKey(msg)
	}
	return false, nil
}
