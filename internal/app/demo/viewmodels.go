package demo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/navkit/internal/application/usecase"
	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/domain/lifecycle"
	"github.com/bnema/navkit/internal/logging"
	"github.com/bnema/navkit/internal/ui/tui"
	"github.com/bnema/navkit/internal/ui/viewmodel"
)

// resultCmd turns a navigation result into a status line.
func resultCmd(what string, res entity.Result) tea.Cmd {
	if res.IsSuccess {
		return nil
	}
	return func() tea.Msg {
		return tui.StatusMsg(fmt.Sprintf("%s: %s", what, res))
	}
}

// confirmCmd presents the confirmation popup off the update loop and reports
// the answer on the status line.
func confirmCmd(popups *usecase.ManagePopupsUseCase, question string) tea.Cmd {
	return func() tea.Msg {
		res := usecase.PresentFor[ConfirmViewModel, bool](context.Background(), popups,
			entity.ParametersOf("question", question))
		switch {
		case res.IsSuccess && res.Value:
			return tui.StatusMsg("confirmed")
		case res.IsSuccess:
			return tui.StatusMsg("declined")
		default:
			return tui.StatusMsg(res.Result.String())
		}
	}
}

// HomeViewModel backs the root page.
type HomeViewModel struct {
	nav    *usecase.NavigateUseCase
	popups *usecase.ManagePopupsUseCase

	mu          sync.Mutex
	Greeting    string
	cursor      int
	activations int
	rootVisits  int
}

var homeSchema = lifecycle.NewSchema(
	lifecycle.Property("greeting", func(vm *HomeViewModel) *string { return &vm.Greeting }),
)

func NewHomeViewModel(nav *usecase.NavigateUseCase, popups *usecase.ManagePopupsUseCase) *HomeViewModel {
	return &HomeViewModel{nav: nav, popups: popups, Greeting: "Welcome to navkit"}
}

func (vm *HomeViewModel) ApplyParameter(key string, value any) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return homeSchema.Apply(vm, key, value)
}

func (vm *HomeViewModel) Title() string { return "Home" }

func (vm *HomeViewModel) OnWindowActivated() {
	vm.mu.Lock()
	vm.activations++
	vm.mu.Unlock()
}

func (vm *HomeViewModel) OnNavigatedToRoot(params *entity.Parameters) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.rootVisits++
	if greeting, ok := entity.Lookup[string](params, "greeting"); ok {
		vm.Greeting = greeting
	}
}

func (vm *HomeViewModel) View() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	var b strings.Builder
	b.WriteString(vm.Greeting + "\n\n")
	for i := 0; i < feedItemCount; i++ {
		marker := "  "
		if i == vm.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%sdetails #%d\n", marker, i+1)
	}
	fmt.Fprintf(&b, "\nenter open · t tabs · c confirm · focus events %d · root visits %d",
		vm.activations, vm.rootVisits)
	return b.String()
}

func (vm *HomeViewModel) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		vm.move(-1)
		return true, nil
	case "down", "j":
		vm.move(1)
		return true, nil
	case "enter":
		vm.mu.Lock()
		id := strconv.Itoa(vm.cursor + 1)
		vm.mu.Unlock()
		link := vm.nav.Relative(false).Push(DetailsPage, entity.ParametersOf("id", id))
		return true, resultCmd("open details", link.Navigate(context.Background(), nil))
	case "t":
		res := vm.nav.Navigate(context.Background(), "//"+MainTabsPage, nil)
		return true, resultCmd("open tabs", res)
	case "c":
		return true, confirmCmd(vm.popups, "Do you like this demo?")
	}
	return false, nil
}

func (vm *HomeViewModel) move(delta int) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.cursor = (vm.cursor + delta + feedItemCount) % feedItemCount
}

// DetailsViewModel shows one item. Details pages can be stacked.
type DetailsViewModel struct {
	nav *usecase.NavigateUseCase

	mu     sync.Mutex
	ID     string
	Source string
	shown  int
}

var detailsSchema = lifecycle.NewSchema(
	lifecycle.Property("id", func(vm *DetailsViewModel) *string { return &vm.ID }),
	lifecycle.Property("source", func(vm *DetailsViewModel) *string { return &vm.Source }),
)

func NewDetailsViewModel(nav *usecase.NavigateUseCase) *DetailsViewModel {
	return &DetailsViewModel{nav: nav}
}

func (vm *DetailsViewModel) ApplyParameter(key string, value any) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return detailsSchema.Apply(vm, key, value)
}

func (vm *DetailsViewModel) Title() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return "Details " + vm.ID
}

func (vm *DetailsViewModel) OnNavigatedTo() {
	vm.mu.Lock()
	vm.shown++
	vm.mu.Unlock()
}

func (vm *DetailsViewModel) OnNavigatedFrom() {}

func (vm *DetailsViewModel) View() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	source := vm.Source
	if source == "" {
		source = "home"
	}
	return fmt.Sprintf("Item %s (from %s), shown %d time(s)\n\nn next item · r back to root · esc back",
		vm.ID, source, vm.shown)
}

func (vm *DetailsViewModel) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "n":
		vm.mu.Lock()
		next, err := strconv.Atoi(vm.ID)
		source := vm.Source
		vm.mu.Unlock()
		if err != nil {
			next = 0
		}
		params := entity.ParametersOf("id", strconv.Itoa(next+1))
		if source != "" {
			params.Set("source", source)
		}
		res := usecase.PushFor[DetailsViewModel](vm.nav.Relative(false), params).Navigate(context.Background(), nil)
		return true, resultCmd("next item", res)
	case "r":
		res := vm.nav.ToRoot(context.Background(), entity.ParametersOf("greeting", "Welcome back"))
		return true, resultCmd("back to root", res)
	}
	return false, nil
}

// MainTabsViewModel hosts the demo tabs.
type MainTabsViewModel struct {
	*viewmodel.TabHostState
}

func NewMainTabsViewModel() *MainTabsViewModel {
	return &MainTabsViewModel{TabHostState: viewmodel.NewTabHostState()}
}

func (vm *MainTabsViewModel) Title() string { return "Tabs" }

// FeedViewModel is a pushable tab. Items are loaded on first selection.
type FeedViewModel struct {
	nav  *usecase.NavigateUseCase
	tab  viewmodel.TabState
	mu   sync.Mutex
	feed []string
}

func NewFeedViewModel(nav *usecase.NavigateUseCase) *FeedViewModel {
	return &FeedViewModel{nav: nav}
}

func (vm *FeedViewModel) Title() string { return "Feed" }

func (vm *FeedViewModel) OnTabSelected() {
	if !vm.tab.MarkSelected() {
		return
	}
	logging.FromContext(context.Background()).Debug().Msg("feed loaded")
	vm.mu.Lock()
	defer vm.mu.Unlock()
	for i := 1; i <= feedItemCount; i++ {
		vm.feed = append(vm.feed, fmt.Sprintf("story %d", i))
	}
}

func (vm *FeedViewModel) OnTabUnselected() { vm.tab.MarkUnselected() }

func (vm *FeedViewModel) View() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if len(vm.feed) == 0 {
		return "loading..."
	}
	return strings.Join(vm.feed, "\n") + "\n\nenter open the first story"
}

func (vm *FeedViewModel) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() != "enter" {
		return false, nil
	}
	res := vm.nav.Navigate(context.Background(), DetailsPage+"?id=1&source=feed", nil)
	return true, resultCmd("open story", res)
}

// SettingsViewModel is a plain tab.
type SettingsViewModel struct {
	popups *usecase.ManagePopupsUseCase
	tab    viewmodel.TabState
}

func NewSettingsViewModel(popups *usecase.ManagePopupsUseCase) *SettingsViewModel {
	return &SettingsViewModel{popups: popups}
}

func (vm *SettingsViewModel) Title() string { return "Settings" }

func (vm *SettingsViewModel) OnTabSelected()   { vm.tab.MarkSelected() }
func (vm *SettingsViewModel) OnTabUnselected() { vm.tab.MarkUnselected() }

func (vm *SettingsViewModel) View() string {
	return "c reset settings (asks for confirmation)"
}

func (vm *SettingsViewModel) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() != "c" {
		return false, nil
	}
	return true, confirmCmd(vm.popups, "Reset all settings?")
}

// ConfirmViewModel answers a yes/no question through the popup result
// protocol.
type ConfirmViewModel struct {
	*viewmodel.PopupResult[bool]

	mu       sync.Mutex
	Question string
}

var confirmSchema = lifecycle.NewSchema(
	lifecycle.Property("question", func(vm *ConfirmViewModel) *string { return &vm.Question }),
)

func NewConfirmViewModel(popups *usecase.ManagePopupsUseCase) *ConfirmViewModel {
	vm := &ConfirmViewModel{PopupResult: viewmodel.NewPopupResult[bool](popups, ConfirmPopup)}
	vm.DismissOnBackRequested = true
	return vm
}

func (vm *ConfirmViewModel) ApplyParameter(key string, value any) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return confirmSchema.Apply(vm, key, value)
}

func (vm *ConfirmViewModel) Title() string { return "Confirm" }

func (vm *ConfirmViewModel) View() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.Question + "\n\ny yes · n no · esc cancel"
}

func (vm *ConfirmViewModel) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	ctx := context.Background()
	var res entity.Result
	switch msg.String() {
	case "y":
		res = vm.Complete(ctx, true)
	case "n":
		res = vm.Complete(ctx, false)
	default:
		return false, nil
	}
	return true, resultCmd("answer", res)
}
