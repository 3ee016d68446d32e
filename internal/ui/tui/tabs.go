package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/navkit/internal/application/port"
)

// TabbedPage hosts child pages as tabs with a single current tab.
type TabbedPage struct {
	basePage

	tabsMu    sync.Mutex
	children  []port.Page
	current   int
	listeners map[int]func()
	nextID    int
}

var _ port.TabContainer = (*TabbedPage)(nil)

// NewTabbedPage creates a tabbed page; the first child is current.
func NewTabbedPage(typeName string, children ...port.Page) *TabbedPage {
	t := &TabbedPage{children: children, listeners: make(map[int]func())}
	t.init(t, typeName)
	return t
}

func (t *TabbedPage) Children() []port.Page {
	t.tabsMu.Lock()
	defer t.tabsMu.Unlock()
	return append([]port.Page(nil), t.children...)
}

func (t *TabbedPage) CurrentTab() port.Page {
	t.tabsMu.Lock()
	defer t.tabsMu.Unlock()
	if t.current < 0 || t.current >= len(t.children) {
		return nil
	}
	return t.children[t.current]
}

// SetCurrentTab selects page. Pages that are not children are ignored.
func (t *TabbedPage) SetCurrentTab(page port.Page) {
	if page == nil {
		return
	}
	t.tabsMu.Lock()
	index := -1
	for i, c := range t.children {
		if c.ID() == page.ID() {
			index = i
			break
		}
	}
	if index < 0 || index == t.current {
		t.tabsMu.Unlock()
		return
	}
	prev := t.children[t.current]
	t.current = index
	listeners := make([]func(), 0, len(t.listeners))
	for _, fn := range t.listeners {
		listeners = append(listeners, fn)
	}
	t.tabsMu.Unlock()

	if t.Visible() {
		hidePage(prev)
		showPage(page)
	}
	for _, fn := range listeners {
		fn()
	}
}

// Step moves the current tab by delta, wrapping around.
func (t *TabbedPage) Step(delta int) {
	children := t.Children()
	if len(children) == 0 {
		return
	}
	t.tabsMu.Lock()
	next := ((t.current+delta)%len(children) + len(children)) % len(children)
	t.tabsMu.Unlock()
	t.SetCurrentTab(children[next])
}

func (t *TabbedPage) OnCurrentTabChanged(fn func()) (unsubscribe func()) {
	t.tabsMu.Lock()
	defer t.tabsMu.Unlock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	return func() {
		t.tabsMu.Lock()
		defer t.tabsMu.Unlock()
		delete(t.listeners, id)
	}
}

// SendBackRequested offers the request to the current tab.
func (t *TabbedPage) SendBackRequested() bool {
	if current := t.CurrentTab(); current != nil {
		return current.SendBackRequested()
	}
	return false
}

func (t *TabbedPage) show() {
	t.basePage.show()
	if current := t.CurrentTab(); current != nil {
		showPage(current)
	}
}

func (t *TabbedPage) hide() {
	if current := t.CurrentTab(); current != nil {
		hidePage(current)
	}
	t.basePage.hide()
}

func (t *TabbedPage) unload() {
	t.hide()
	for _, c := range t.Children() {
		unloadPage(c)
	}
	t.basePage.unload()
}

func (t *TabbedPage) render(width, height int, theme *Theme) string {
	children := t.Children()
	labels := make([]string, len(children))
	for i, c := range children {
		labels[i] = c.TypeName()
		if n := asNode(c); n != nil {
			labels[i] = n.title()
		}
	}
	t.tabsMu.Lock()
	bar := NewTabBar(theme, labels...)
	bar.SetActive(t.current)
	t.tabsMu.Unlock()

	header := bar.View(width)
	body := ""
	if n := asNode(t.CurrentTab()); n != nil {
		body = n.render(width, height-lipgloss.Height(header), theme)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (t *TabbedPage) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if n := asNode(t.CurrentTab()); n != nil {
		return n.handleKey(msg)
	}
	return false, nil
}

// TabBar renders a horizontal tab bar.
type TabBar struct {
	Tabs   []string
	Active int
	theme  *Theme
}

// NewTabBar creates a tab bar with the given labels.
func NewTabBar(theme *Theme, tabs ...string) TabBar {
	return TabBar{Tabs: tabs, theme: theme}
}

// SetActive sets the active tab index.
func (b *TabBar) SetActive(index int) {
	if index >= 0 && index < len(b.Tabs) {
		b.Active = index
	}
}

// View renders the tab bar at the given width.
func (b TabBar) View(width int) string {
	tabs := make([]string, 0, len(b.Tabs)*2)
	gap := lipgloss.NewStyle().
		Foreground(b.theme.Border).
		Render(" │ ")

	for i, tab := range b.Tabs {
		if i > 0 {
			tabs = append(tabs, gap)
		}
		style := b.theme.InactiveTab
		if i == b.Active {
			style = b.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(tab))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if width <= 0 {
		return b.theme.TabBar.Render(row)
	}
	return b.theme.TabBar.Width(width).Render(row)
}
