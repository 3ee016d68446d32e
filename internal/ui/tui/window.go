package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/application/usecase"
	"github.com/bnema/navkit/internal/ui/input"
)

// RefreshMsg asks the program to redraw after a change made outside Update.
type RefreshMsg struct{}

// StatusMsg replaces the status line.
type StatusMsg string

// Window is the Bubble Tea model hosting the root page and the popup layer.
type Window struct {
	theme    *Theme
	keyboard *input.KeyboardHandler
	help     help.Model
	popups   *PopupLayer

	mu        sync.Mutex
	root      port.Page
	width     int
	height    int
	status    string
	popupRect rect
	send      func(tea.Msg)
	activated map[int]func()
	nextID    int
}

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

var (
	_ tea.Model         = (*Window)(nil)
	_ port.Surface      = (*Window)(nil)
	_ port.WindowEvents = (*Window)(nil)
)

// NewWindow creates a window. keyboard may be nil.
func NewWindow(theme *Theme, keyboard *input.KeyboardHandler) *Window {
	if theme == nil {
		theme = NewTheme()
	}
	w := &Window{
		theme:     theme,
		keyboard:  keyboard,
		help:      NewStyledHelp(theme),
		popups:    NewPopupLayer(),
		activated: make(map[int]func()),
	}
	w.popups.setNotifier(w.refresh)
	return w
}

// Popups returns the popup surface of the window.
func (w *Window) Popups() *PopupLayer { return w.popups }

// SetSender installs the function used to wake the program, usually
// (*tea.Program).Send.
func (w *Window) SetSender(send func(tea.Msg)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.send = send
}

func (w *Window) refresh() {
	w.mu.Lock()
	send := w.send
	w.mu.Unlock()
	if send != nil {
		go send(RefreshMsg{})
	}
}

// ToggleHelp switches between the short and the full help footer.
func (w *Window) ToggleHelp() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.help.ShowAll = !w.help.ShowAll
}

func (w *Window) Root() port.Page {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.root
}

// SetRoot replaces the root page; the previous tree is unloaded.
func (w *Window) SetRoot(_ context.Context, page port.Page, _ bool) error {
	if page == nil {
		return ErrNilPage
	}
	w.mu.Lock()
	old := w.root
	w.root = page
	w.mu.Unlock()

	if old != nil {
		unloadPage(old)
	}
	showPage(page)
	w.refresh()
	return nil
}

func (w *Window) NewNavigationContainer() (port.NavigationContainer, error) {
	s := NewNavigationStack(usecase.NavigationPageName)
	s.setNotifier(w.refresh)
	return s, nil
}

func (w *Window) OnActivated(fn func()) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.activated[id] = fn
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.activated, id)
	}
}

// Activate raises the window activated notification.
func (w *Window) Activate() {
	w.mu.Lock()
	fns := make([]func(), 0, len(w.activated))
	for _, fn := range w.activated {
		fns = append(fns, fn)
	}
	w.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// CurrentTabs returns the innermost tabbed page on the displayed path.
func (w *Window) CurrentTabs() *TabbedPage {
	var found *TabbedPage
	page := w.Root()
	for page != nil {
		switch p := page.(type) {
		case *TabbedPage:
			found = p
			page = p.CurrentTab()
		case port.NavigationContainer:
			page = p.CurrentPage()
		default:
			return found
		}
	}
	return found
}

// StepTab moves the current tab of the displayed tabbed page by delta.
func (w *Window) StepTab(delta int) bool {
	tabs := w.CurrentTabs()
	if tabs == nil {
		return false
	}
	tabs.Step(delta)
	return true
}

func (w *Window) Init() tea.Cmd {
	return nil
}

func (w *Window) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.mu.Lock()
		w.width, w.height = msg.Width, msg.Height
		w.help.Width = msg.Width
		w.mu.Unlock()
	case tea.FocusMsg:
		w.Activate()
	case StatusMsg:
		w.mu.Lock()
		w.status = string(msg)
		w.mu.Unlock()
	case tea.MouseMsg:
		return w, w.handleMouse(msg)
	case tea.KeyMsg:
		return w, w.handleKey(msg)
	}
	return w, nil
}

func (w *Window) handleKey(msg tea.KeyMsg) tea.Cmd {
	if top := asNode(w.popups.Top()); top != nil {
		if handled, cmd := top.handleKey(msg); handled {
			return cmd
		}
	} else if root := asNode(w.Root()); root != nil {
		if handled, cmd := root.handleKey(msg); handled {
			return cmd
		}
	}
	if w.keyboard != nil {
		if _, err := w.keyboard.HandleKey(msg); err != nil {
			return statusCmd(err.Error())
		}
	}
	return nil
}

func (w *Window) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	top, ok := w.popups.Top().(*PopupPage)
	if !ok {
		return nil
	}
	w.mu.Lock()
	inside := w.popupRect.contains(msg.X, msg.Y)
	w.mu.Unlock()
	if !inside {
		top.TapBackground()
	}
	return nil
}

func statusCmd(s string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(s) }
}

func (w *Window) View() string {
	w.mu.Lock()
	width, height, status := w.width, w.height, w.status
	footer := w.help.View(w.keyboardKeys())
	w.mu.Unlock()

	if status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, w.theme.StatusBar.Render(status), footer)
	}
	bodyHeight := height - lipgloss.Height(footer)

	if top := asNode(w.popups.Top()); top != nil {
		box := top.render(width*2/3, bodyHeight*2/3, w.theme)
		bw, bh := lipgloss.Width(box), lipgloss.Height(box)
		w.mu.Lock()
		w.popupRect = rect{x: (width - bw) / 2, y: (bodyHeight - bh) / 2, w: bw, h: bh}
		w.mu.Unlock()
		overlay := lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, box,
			lipgloss.WithWhitespaceChars("·"),
			lipgloss.WithWhitespaceForeground(w.theme.SurfaceVariant))
		return lipgloss.JoinVertical(lipgloss.Left, overlay, footer)
	}

	body := ""
	if root := asNode(w.Root()); root != nil {
		frame := w.theme.Frame
		body = frame.Render(root.render(
			width-frame.GetHorizontalFrameSize(),
			bodyHeight-frame.GetVerticalFrameSize(),
			w.theme))
	}
	body = lipgloss.NewStyle().Height(max(bodyHeight, 0)).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (w *Window) keyboardKeys() help.KeyMap {
	if w.keyboard == nil {
		return input.DefaultKeyMap()
	}
	return w.keyboard.KeyMap()
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
