// Package input maps terminal key presses to navigation actions.
package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents what happens when a shortcut is triggered.
type Action string

// Predefined actions for the keyboard system.
const (
	// Page navigation
	ActionGoBack Action = "go_back"
	ActionGoRoot Action = "go_root"

	// Tabs
	ActionNextTab     Action = "next_tab"
	ActionPreviousTab Action = "previous_tab"

	// Popups
	ActionDismissPopup Action = "dismiss_popup"

	// UI
	ActionToggleHelp Action = "toggle_help"

	// Application
	ActionQuit Action = "quit"
)

// KeyMap holds the key bindings of every action. It satisfies the
// bubbles/help KeyMap interface.
type KeyMap struct {
	bindings map[Action]*key.Binding
	order    []Action
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() *KeyMap {
	m := &KeyMap{bindings: make(map[Action]*key.Binding)}
	m.add(ActionGoBack, "back", "esc", "backspace")
	m.add(ActionGoRoot, "root", "home", "g")
	m.add(ActionNextTab, "next tab", "tab", "right", "l")
	m.add(ActionPreviousTab, "prev tab", "shift+tab", "left", "h")
	m.add(ActionDismissPopup, "close popup", "x")
	m.add(ActionToggleHelp, "help", "?")
	m.add(ActionQuit, "quit", "q", "ctrl+c")
	return m
}

func (m *KeyMap) add(action Action, desc string, keys ...string) {
	b := key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
	m.bindings[action] = &b
	m.order = append(m.order, action)
}

// Rebind replaces the keys of the given actions. Unknown action names and
// empty key lists are reported as errors; valid entries are still applied.
func (m *KeyMap) Rebind(overrides map[string][]string) error {
	var unknown []string
	for name, keys := range overrides {
		b, ok := m.bindings[Action(strings.ToLower(strings.TrimSpace(name)))]
		if !ok || len(keys) == 0 {
			unknown = append(unknown, name)
			continue
		}
		b.SetKeys(keys...)
		b.SetHelp(helpKeys(keys), b.Help().Desc)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("invalid shortcut overrides: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// Binding returns the binding of action.
func (m *KeyMap) Binding(action Action) (key.Binding, bool) {
	b, ok := m.bindings[action]
	if !ok {
		return key.Binding{}, false
	}
	return *b, true
}

// Lookup returns the action bound to msg.
func (m *KeyMap) Lookup(msg tea.KeyMsg) (Action, bool) {
	for _, action := range m.order {
		if key.Matches(msg, *m.bindings[action]) {
			return action, true
		}
	}
	return "", false
}

// Actions returns the known actions in display order.
func (m *KeyMap) Actions() []Action {
	return append([]Action(nil), m.order...)
}

// ShortHelp returns keybindings to show in compact help.
func (m *KeyMap) ShortHelp() []key.Binding {
	return m.collect(ActionGoBack, ActionNextTab, ActionDismissPopup, ActionToggleHelp, ActionQuit)
}

// FullHelp returns keybindings for expanded help.
func (m *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		m.collect(ActionGoBack, ActionGoRoot),
		m.collect(ActionNextTab, ActionPreviousTab),
		m.collect(ActionDismissPopup),
		m.collect(ActionToggleHelp, ActionQuit),
	}
}

func (m *KeyMap) collect(actions ...Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := m.bindings[a]; ok {
			out = append(out, *b)
		}
	}
	return out
}

func helpKeys(keys []string) string {
	return strings.Join(keys, "/")
}
