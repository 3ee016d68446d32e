package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/domain/lifecycle"
)

var (
	ErrNoPopup           = errors.New("no popup displayed")
	ErrPopupNotDisplayed = errors.New("popup is not displayed")
)

// PopupPage is a page displayed on the popup layer.
type PopupPage struct {
	ContentPage
}

func NewPopupPage(typeName string) *PopupPage {
	p := &PopupPage{}
	p.init(p, typeName)
	return p
}

// SendBackRequested cancels the pending result when the view-model opts in.
// The request is always consumed so the page below is left untouched.
func (p *PopupPage) SendBackRequested() bool {
	if d, ok := p.ViewModel().(lifecycle.PopupDismissible); ok && d.ShouldDismissOnBackRequested() {
		d.NotifyCancellation()
	}
	return true
}

// TapBackground handles a click outside the popup.
func (p *PopupPage) TapBackground() bool {
	if d, ok := p.ViewModel().(lifecycle.PopupDismissible); ok && d.ShouldDismissOnBackgroundTapped() {
		d.NotifyCancellation()
	}
	return true
}

func (p *PopupPage) render(width, height int, theme *Theme) string {
	title := theme.PopupTitle.Render(p.title())
	body := p.ContentPage.render(width, height, theme)
	return theme.Popup.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// PopupLayer is the modal stack displayed above the window root.
type PopupLayer struct {
	mu     sync.Mutex
	pages  []port.Page
	notify func()
}

var _ port.PopupSurface = (*PopupLayer)(nil)

func NewPopupLayer() *PopupLayer {
	return &PopupLayer{}
}

func (l *PopupLayer) setNotifier(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notify = fn
}

func (l *PopupLayer) changed() {
	l.mu.Lock()
	fn := l.notify
	l.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (l *PopupLayer) Push(_ context.Context, page port.Page, _ bool) error {
	if page == nil {
		return ErrNilPage
	}
	l.mu.Lock()
	l.pages = append(l.pages, page)
	l.mu.Unlock()

	showPage(page)
	l.changed()
	return nil
}

func (l *PopupLayer) Pop(_ context.Context, _ bool) error {
	l.mu.Lock()
	n := len(l.pages)
	if n == 0 {
		l.mu.Unlock()
		return ErrNoPopup
	}
	top := l.pages[n-1]
	l.pages = l.pages[:n-1]
	l.mu.Unlock()

	unloadPage(top)
	l.changed()
	return nil
}

func (l *PopupLayer) Remove(_ context.Context, page port.Page, _ bool) error {
	if page == nil {
		return ErrNilPage
	}
	l.mu.Lock()
	index := -1
	for i, p := range l.pages {
		if p.ID() == page.ID() {
			index = i
			break
		}
	}
	if index < 0 {
		l.mu.Unlock()
		return ErrPopupNotDisplayed
	}
	removed := l.pages[index]
	l.pages = append(l.pages[:index], l.pages[index+1:]...)
	l.mu.Unlock()

	unloadPage(removed)
	l.changed()
	return nil
}

func (l *PopupLayer) PopAll(_ context.Context, _ bool) error {
	l.mu.Lock()
	pages := l.pages
	l.pages = nil
	l.mu.Unlock()

	for i := len(pages) - 1; i >= 0; i-- {
		unloadPage(pages[i])
	}
	if len(pages) > 0 {
		l.changed()
	}
	return nil
}

func (l *PopupLayer) Stack() []port.Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]port.Page(nil), l.pages...)
}

// Top returns the top-most popup, or nil.
func (l *PopupLayer) Top() port.Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.pages) == 0 {
		return nil
	}
	return l.pages[len(l.pages)-1]
}

func (l *PopupLayer) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if n := asNode(l.Top()); n != nil {
		return n.handleKey(msg)
	}
	return false, nil
}
