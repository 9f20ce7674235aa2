package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/routined/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
		MarkdownView: views.RenderMarkdown(m.helpMarkdown(), string(m.Service.Settings().Theme)),
	})
}

// helpMarkdown is the long-form guide shown under the key bindings.
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# routined\n\n")
	b.WriteString("Track your daily routine block by block. A day keeps the streak when ")
	b.WriteString("every must-do task is done, or the completion rate reaches the threshold.\n\n")
	b.WriteString("## Commands\n\n")
	b.WriteString("- `/toggle <task-id> [date]`\n")
	b.WriteString("- `/threshold <0-100>`\n")
	b.WriteString("- `/freeze on|off`\n")
	b.WriteString("- `/theme dark|light`\n")
	b.WriteString("- `/goto <date|today>`\n")
	b.WriteString("- `/period days|weeks|months|years`\n")
	b.WriteString("- `/reset`\n")
	b.WriteString("- `/export <path>`\n")
	return b.String()
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Today, Action: "switch to Today"},
		{Key: m.Keys.Calendar, Action: "switch to Calendar"},
		{Key: m.Keys.Stats, Action: "switch to Stats"},
		{Key: m.Keys.Settings, Action: "switch to Settings"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	moveKeys := fmt.Sprintf("%s/%s", m.Keys.Down, m.Keys.Up)
	switch m.CurrentView {
	case ViewToday:
		return []KeyBinding{
			{Key: moveKeys, Action: "move selection"},
			{Key: toggleKeyLabel(m.Keys.Toggle), Action: "toggle task"},
		}
	case ViewCalendar:
		return []KeyBinding{
			{Key: fmt.Sprintf("%s/%s", m.Keys.PrevDay, m.Keys.NextDay), Action: "previous/next day"},
			{Key: "t", Action: "jump to today"},
			{Key: moveKeys, Action: "move selection"},
			{Key: toggleKeyLabel(m.Keys.Toggle), Action: "toggle task"},
		}
	case ViewStats:
		return []KeyBinding{
			{Key: "d/w/m/y", Action: "days/weeks/months/years"},
		}
	case ViewSettings:
		return []KeyBinding{
			{Key: moveKeys, Action: "move selection"},
			{Key: fmt.Sprintf("%s/%s", m.Keys.PrevDay, m.Keys.NextDay), Action: "adjust threshold"},
			{Key: toggleKeyLabel(m.Keys.Toggle), Action: "toggle / activate"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
