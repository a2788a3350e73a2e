// Package menu builds the listing of command aliases shown with help.
package menu

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "solitaire/pkg/engine/input"
	"solitaire/pkg/game/renderer"
)

// BindingMenuItem is one line of the listing: an action and its codes.
type BindingMenuItem struct {
	Action engineinput.Action
}

// GetLabel returns the display label for this binding, with the codes in
// ACTION{} markup.
func (b BindingMenuItem) GetLabel() string {
	codes := engineinput.GetBindingsByAction()[b.Action]
	if len(codes) == 0 {
		return fmt.Sprintf("%s: (unbound)", engineinput.ActionName(b.Action))
	}
	marked := make([]string, len(codes))
	for i, code := range codes {
		marked[i] = renderer.MarkupAction + "{" + code + "}"
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(b.Action), strings.Join(marked, ", "))
}

// BindingsMenu lists every bound action in a fixed order.
type BindingsMenu struct {
	actions []engineinput.Action
}

// NewBindingsMenu creates the listing for the player-facing actions.
func NewBindingsMenu() *BindingsMenu {
	return &BindingsMenu{
		actions: []engineinput.Action{
			engineinput.ActionSelect,
			engineinput.ActionPlace,
			engineinput.ActionRemove,
			engineinput.ActionHint,
			engineinput.ActionSubmit,
			engineinput.ActionReset,
			engineinput.ActionBack,
			engineinput.ActionShare,
			engineinput.ActionHelp,
			engineinput.ActionQuit,
		},
	}
}

// GetTitle returns the listing title.
func (m *BindingsMenu) GetTitle() string {
	return gotext.Get("BINDINGS_TITLE")
}

// GetMenuItems returns one item per action.
func (m *BindingsMenu) GetMenuItems() []BindingMenuItem {
	items := make([]BindingMenuItem, len(m.actions))
	for i, action := range m.actions {
		items[i] = BindingMenuItem{Action: action}
	}
	return items
}

// Lines renders the title and every item, one per line.
func (m *BindingsMenu) Lines() []string {
	lines := []string{m.GetTitle()}
	for _, item := range m.GetMenuItems() {
		lines = append(lines, "  "+item.GetLabel())
	}
	return lines
}
