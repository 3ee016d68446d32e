package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/bnema/navkit/internal/application/port"
)

// Viewer is implemented by view-models that render their own content.
type Viewer interface {
	View() string
}

// Titled is implemented by view-models that provide a display title.
type Titled interface {
	Title() string
}

// KeyReceiver is implemented by view-models that consume page-level keys.
type KeyReceiver interface {
	HandleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd)
}

// BackHandler is implemented by view-models that handle back requests on a
// plain page.
type BackHandler interface {
	OnBackRequested() bool
}

// node is a page of this toolkit.
type node interface {
	port.Page
	show()
	hide()
	unload()
	render(width, height int, theme *Theme) string
	handleKey(msg tea.KeyMsg) (bool, tea.Cmd)
	title() string
}

// basePage carries the identity, view-model and signals shared by every page.
type basePage struct {
	self     node
	id       port.PageID
	typeName string

	mu       sync.Mutex
	vm       any
	visible  bool
	unloaded bool
	handlers map[int]port.PageEventHandler
	nextID   int
}

func (p *basePage) init(self node, typeName string) {
	p.self = self
	p.id = port.PageID(uuid.NewString())
	p.typeName = typeName
	p.handlers = make(map[int]port.PageEventHandler)
}

func (p *basePage) ID() port.PageID  { return p.id }
func (p *basePage) TypeName() string { return p.typeName }

func (p *basePage) ViewModel() any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vm
}

func (p *basePage) SetViewModel(vm any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vm = vm
}

func (p *basePage) Subscribe(handler port.PageEventHandler) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.handlers[id] = handler
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.handlers, id)
	}
}

// Visible reports whether the page is currently shown.
func (p *basePage) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

func (p *basePage) emit(event port.PageEvent) {
	p.mu.Lock()
	handlers := make([]port.PageEventHandler, 0, len(p.handlers))
	for _, h := range p.handlers {
		handlers = append(handlers, h)
	}
	p.mu.Unlock()

	for _, h := range handlers {
		h(p.self, event)
	}
}

// setVisible flips the visibility flag and reports whether it changed.
func (p *basePage) setVisible(visible bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.visible == visible || p.unloaded {
		return false
	}
	p.visible = visible
	return true
}

func (p *basePage) show() {
	if p.setVisible(true) {
		p.emit(port.PageAppearing)
		p.emit(port.PageNavigatedTo)
	}
}

func (p *basePage) hide() {
	if p.setVisible(false) {
		p.emit(port.PageDisappearing)
		p.emit(port.PageNavigatedFrom)
	}
}

func (p *basePage) unload() {
	p.hide()
	p.mu.Lock()
	if p.unloaded {
		p.mu.Unlock()
		return
	}
	p.unloaded = true
	p.mu.Unlock()
	p.emit(port.PageUnloaded)
}

func (p *basePage) title() string {
	if t, ok := p.ViewModel().(Titled); ok {
		return t.Title()
	}
	return p.typeName
}

// ContentPage is a plain page rendering its view-model.
type ContentPage struct {
	basePage

	// OnBack handles back requests before the view-model is asked.
	OnBack func() bool
}

var _ port.Page = (*ContentPage)(nil)

func NewContentPage(typeName string) *ContentPage {
	p := &ContentPage{}
	p.init(p, typeName)
	return p
}

// SendBackRequested offers the request to OnBack, then to the view-model.
func (p *ContentPage) SendBackRequested() bool {
	if p.OnBack != nil && p.OnBack() {
		return true
	}
	if h, ok := p.ViewModel().(BackHandler); ok {
		return h.OnBackRequested()
	}
	return false
}

func (p *ContentPage) render(width, height int, theme *Theme) string {
	body := theme.Subtle.Render(p.typeName)
	if v, ok := p.ViewModel().(Viewer); ok {
		body = v.View()
	}
	return theme.Normal.MaxWidth(width).MaxHeight(height).Render(body)
}

func (p *ContentPage) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if r, ok := p.ViewModel().(KeyReceiver); ok {
		return r.HandleKey(msg)
	}
	return false, nil
}

// asNode returns page as a toolkit page, or nil for foreign pages.
func asNode(page port.Page) node {
	n, _ := page.(node)
	return n
}

func showPage(page port.Page) {
	if n := asNode(page); n != nil {
		n.show()
	}
}

func hidePage(page port.Page) {
	if n := asNode(page); n != nil {
		n.hide()
	}
}

func unloadPage(page port.Page) {
	if n := asNode(page); n != nil {
		n.unload()
	}
}
