package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/domain/entity"
)

type fakePage struct {
	id       port.PageID
	typeName string

	mu       sync.Mutex
	vm       any
	handlers map[int]port.PageEventHandler
	next     int
}

func newFakePage(typeName string) *fakePage {
	return &fakePage{
		id:       port.PageID(uuid.NewString()),
		typeName: typeName,
		handlers: make(map[int]port.PageEventHandler),
	}
}

func (p *fakePage) ID() port.PageID         { return p.id }
func (p *fakePage) TypeName() string        { return p.typeName }
func (p *fakePage) SendBackRequested() bool { return false }

func (p *fakePage) ViewModel() any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vm
}

func (p *fakePage) SetViewModel(vm any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vm = vm
}

func (p *fakePage) Subscribe(h port.PageEventHandler) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.next
	p.next++
	p.handlers[id] = h
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.handlers, id)
	}
}

func (p *fakePage) subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.handlers)
}

func (p *fakePage) raise(e port.PageEvent) {
	p.mu.Lock()
	hs := make([]port.PageEventHandler, 0, len(p.handlers))
	for _, h := range p.handlers {
		hs = append(hs, h)
	}
	p.mu.Unlock()
	for _, h := range hs {
		h(p, e)
	}
}

type staticSource struct {
	mu    sync.Mutex
	types []port.PageType
	calls int
}

func (s *staticSource) PageTypes() []port.PageType {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return append([]port.PageType(nil), s.types...)
}

func (s *staticSource) add(pt port.PageType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = append(s.types, pt)
}

func pageType(name string, family port.PageFamily) port.PageType {
	return port.PageType{
		Name:   name,
		Family: family,
		New:    func() (port.Page, error) { return newFakePage(name), nil },
	}
}

type recordedDispatch struct {
	kind  string
	vm    any
	event port.PageEvent
	keys  []string
}

type recordingDispatcher struct {
	mu      sync.Mutex
	records []recordedDispatch
	rootErr error
}

func (d *recordingDispatcher) add(r recordedDispatch) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.records = append(d.records, r)
}

func (d *recordingDispatcher) all() []recordedDispatch {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]recordedDispatch(nil), d.records...)
}

func (d *recordingDispatcher) DispatchPageEvent(_ context.Context, vm any, event port.PageEvent) {
	d.add(recordedDispatch{kind: "event", vm: vm, event: event})
}

func (d *recordingDispatcher) DispatchParametersSet(_ context.Context, vm any, params *entity.Parameters) {
	d.add(recordedDispatch{kind: "parameters_set", vm: vm, keys: params.Keys()})
}

func (d *recordingDispatcher) DispatchWindowActivated(_ context.Context, vm any) {
	d.add(recordedDispatch{kind: "window_activated", vm: vm})
}

func (d *recordingDispatcher) DispatchNavigatedToRoot(_ context.Context, vm any, params *entity.Parameters) error {
	d.add(recordedDispatch{kind: "root", vm: vm, keys: params.Keys()})
	return d.rootErr
}

func (d *recordingDispatcher) DispatchTabSelected(_ context.Context, tab any) {
	d.add(recordedDispatch{kind: "tab_selected", vm: tab})
}

func (d *recordingDispatcher) DispatchTabUnselected(_ context.Context, tab any) {
	d.add(recordedDispatch{kind: "tab_unselected", vm: tab})
}
