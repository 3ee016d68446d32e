// Package coordinator keeps toolkit containers and their view-models in sync.
package coordinator

import (
	"context"
	"sync"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/domain/lifecycle"
	"github.com/bnema/navkit/internal/logging"
)

// tabsBinder is implemented by hosts whose tab list is filled from the
// container's children.
type tabsBinder interface {
	SetTabs(tabs []lifecycle.TabComponent)
}

// TabCoordinatorConfig holds configuration for TabCoordinator.
type TabCoordinatorConfig struct {
	Container  port.TabContainer
	Host       lifecycle.TabHost
	Dispatcher port.LifecycleDispatcher
}

// TabCoordinator mirrors the current tab of a tab container into its
// TabHost view-model and back, and delivers selected / unselected
// notifications to the tab view-models.
type TabCoordinator struct {
	container  port.TabContainer
	host       lifecycle.TabHost
	dispatcher port.LifecycleDispatcher
	ctx        context.Context

	mu       sync.Mutex
	previous int
	detached bool
	unsubs   []func()
}

// NewTabCoordinator creates a TabCoordinator and attaches it. The tab that
// is current at attach time receives its first selected notification.
func NewTabCoordinator(ctx context.Context, cfg TabCoordinatorConfig) *TabCoordinator {
	c := &TabCoordinator{
		container:  cfg.Container,
		host:       cfg.Host,
		dispatcher: cfg.Dispatcher,
		ctx:        logging.WithComponent(context.WithoutCancel(ctx), "tab_coordinator"),
		previous:   -1,
	}
	c.attach()
	return c
}

// AttachTabs returns a page initializer that attaches a TabCoordinator to
// every tab container whose view-model is a TabHost.
func AttachTabs(dispatcher port.LifecycleDispatcher) func(ctx context.Context, page port.Page) {
	return func(ctx context.Context, page port.Page) {
		container, ok := page.(port.TabContainer)
		if !ok {
			return
		}
		host, ok := container.ViewModel().(lifecycle.TabHost)
		if !ok {
			logging.FromContext(ctx).Debug().
				Str("page", page.TypeName()).
				Msg("tab container without tab host view-model, not synchronized")
			return
		}
		NewTabCoordinator(ctx, TabCoordinatorConfig{
			Container:  container,
			Host:       host,
			Dispatcher: dispatcher,
		})
	}
}

func (c *TabCoordinator) attach() {
	children := c.container.Children()
	if binder, ok := c.host.(tabsBinder); ok && len(c.host.Tabs()) == 0 {
		binder.SetTabs(tabComponents(children))
	}

	c.unsubs = append(c.unsubs,
		c.container.OnCurrentTabChanged(c.handleCurrentTabChanged),
		c.host.OnSelectedTabIndexChanged(c.handleSelectedIndexChanged),
		c.container.Subscribe(func(_ port.Page, event port.PageEvent) {
			if event == port.PageUnloaded {
				c.Detach()
			}
		}),
	)

	if sel := c.host.SelectedTabIndex(); sel >= 0 && sel < len(children) && indexOf(children, c.container.CurrentTab()) != sel {
		c.container.SetCurrentTab(children[sel])
	}
	// No-op when SetCurrentTab above already raised the change.
	c.handleCurrentTabChanged()
}

// Detach stops synchronizing. It is called when the container unloads.
func (c *TabCoordinator) Detach() {
	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		return
	}
	c.detached = true
	unsubs := c.unsubs
	c.unsubs = nil
	c.mu.Unlock()

	for _, unsubscribe := range unsubs {
		unsubscribe()
	}
}

// PreviousIndex returns the index of the last delivered selection, or -1.
func (c *TabCoordinator) PreviousIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previous
}

func (c *TabCoordinator) handleCurrentTabChanged() {
	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		return
	}
	children := c.container.Children()
	index := indexOf(children, c.container.CurrentTab())
	if index < 0 || index == c.previous {
		c.mu.Unlock()
		return
	}
	previous := c.previous
	// Recorded first: the index echo from the host below compares equal.
	c.previous = index
	c.mu.Unlock()

	c.host.SetSelectedTabIndex(index)

	if previous >= 0 {
		if tab := c.tabAt(children, previous); tab != nil {
			c.dispatcher.DispatchTabUnselected(c.ctx, tab)
		}
	}
	if tab := c.tabAt(children, index); tab != nil {
		c.dispatcher.DispatchTabSelected(c.ctx, tab)
	}

	logging.FromContext(c.ctx).Debug().
		Int("previous", previous).
		Int("current", index).
		Msg("tab selection synchronized")
}

func (c *TabCoordinator) handleSelectedIndexChanged(index int) {
	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		return
	}
	children := c.container.Children()
	if index < 0 || index >= len(children) || index == c.previous {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.container.SetCurrentTab(children[index])
}

func (c *TabCoordinator) tabAt(children []port.Page, index int) any {
	if tabs := c.host.Tabs(); index < len(tabs) {
		return tabs[index]
	}
	if index < len(children) {
		return tabViewModel(children[index])
	}
	return nil
}

func indexOf(pages []port.Page, page port.Page) int {
	if page == nil {
		return -1
	}
	for i, p := range pages {
		if p.ID() == page.ID() {
			return i
		}
	}
	return -1
}

// tabViewModel returns the view-model standing for a tab: the child's own,
// or the bottom page's when the child is a navigation container.
func tabViewModel(child port.Page) any {
	if vm := child.ViewModel(); vm != nil {
		return vm
	}
	if nav, ok := child.(port.NavigationContainer); ok {
		if stack := nav.Stack(); len(stack) > 0 {
			return stack[0].ViewModel()
		}
	}
	return nil
}

func tabComponents(children []port.Page) []lifecycle.TabComponent {
	tabs := make([]lifecycle.TabComponent, 0, len(children))
	for _, child := range children {
		tab, ok := tabViewModel(child).(lifecycle.TabComponent)
		if !ok {
			return nil
		}
		tabs = append(tabs, tab)
	}
	return tabs
}
