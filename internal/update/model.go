package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/routined/internal/config"
	"github.com/sandeepkv93/routined/internal/engine"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/rollover"
	"github.com/sandeepkv93/routined/internal/stats"
)

type View string

const (
	ViewToday    View = "Today"
	ViewCalendar View = "Calendar"
	ViewStats    View = "Stats"
	ViewSettings View = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Quit     string
	Today    string
	Calendar string
	Stats    string
	Settings string
	Toggle   string
	Up       string
	Down     string
	PrevDay  string
	NextDay  string
	Help     string
}

// KeymapFromConfig maps the TOML key bindings onto the in-model keymap,
// falling back to the defaults for any unset binding.
func KeymapFromConfig(keys config.Keymap) GlobalKeyMap {
	out := DefaultKeyMap()
	if keys.Quit != "" {
		out.Quit = keys.Quit
	}
	if keys.Today != "" {
		out.Today = keys.Today
	}
	if keys.Calendar != "" {
		out.Calendar = keys.Calendar
	}
	if keys.Stats != "" {
		out.Stats = keys.Stats
	}
	if keys.Settings != "" {
		out.Settings = keys.Settings
	}
	if keys.Toggle != "" {
		out.Toggle = keys.Toggle
	}
	if keys.Up != "" {
		out.Up = keys.Up
	}
	if keys.Down != "" {
		out.Down = keys.Down
	}
	if keys.PrevDay != "" {
		out.PrevDay = keys.PrevDay
	}
	if keys.NextDay != "" {
		out.NextDay = keys.NextDay
	}
	if keys.Help != "" {
		out.Help = keys.Help
	}
	return out
}

func DefaultKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Quit:     "q",
		Today:    "1",
		Calendar: "2",
		Stats:    "3",
		Settings: "4",
		Toggle:   " ",
		Up:       "k",
		Down:     "j",
		PrevDay:  "h",
		NextDay:  "l",
		Help:     "?",
	}
}

type TodayState struct {
	Cursor int
}

type CalendarState struct {
	FocusDate string
	Cursor    int
}

type StatsState struct {
	Period stats.Period
}

type SettingsState struct {
	Cursor int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// taskRow is one selectable line of a day view: a task plus the block it
// belongs to, in flattened schedule order.
type taskRow struct {
	BlockName   string
	BlockWindow string
	Task        model.Task
	Done        bool
}

type Model struct {
	Service        *engine.Service
	Rollover       *rollover.Engine
	CurrentView    View
	SelectedTaskID string
	Today          TodayState
	Calendar       CalendarState
	Stats          StatsState
	Settings       SettingsState
	Palette        CommandPaletteState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	// Bubble components used for rich TUI controls
	todayList     list.Model
	statsTable    table.Model
	commandInput  textinput.Model
	completionBar progress.Model
	helpModel     help.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type DayRolloverMsg struct {
	Event rollover.DayEvent
}

func NewModel(service *engine.Service) Model {
	m := Model{
		Service:     service,
		CurrentView: ViewToday,
		Stats:       StatsState{Period: stats.PeriodDays},
		Keys:        DefaultKeyMap(),
	}
	m.Calendar.FocusDate = service.Today()
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithRuntime(service *engine.Service, roll *rollover.Engine, cfg RuntimeConfig, keys GlobalKeyMap) Model {
	m := NewModel(service)
	m.Rollover = roll
	m.Keys = keys
	if p, err := stats.ParsePeriod(cfg.DefaultPeriod); err == nil {
		m.Stats.Period = p
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.todayList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.todayList.Title = "Routine (list)"
	m.todayList.SetShowHelp(false)
	m.todayList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Bucket", Width: 10},
		{Title: "Done/Day", Width: 10},
		{Title: "Rate", Width: 6},
	}
	m.statsTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(8))

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.completionBar = progress.New(progress.WithDefaultGradient())
	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	rows := m.taskRows(m.Service.Today())
	items := make([]list.Item, 0, len(rows))
	for _, row := range rows {
		desc := row.BlockName
		if row.Done {
			desc += " | done"
		}
		items = append(items, listItem{title: row.Task.Title, description: desc})
	}
	m.todayList.SetItems(items)
	if len(items) > 0 && m.Today.Cursor < len(items) {
		m.todayList.Select(m.Today.Cursor)
	}

	buckets := m.statsAggregator().Buckets(m.Stats.Period, m.statsNow())
	tableRows := make([]table.Row, 0, len(buckets))
	for _, bucket := range buckets {
		tableRows = append(tableRows, table.Row{
			bucket.Label,
			formatAverage(bucket.CompletedCount),
			formatPercent(bucket.CompletionPercentage),
		})
	}
	m.statsTable.SetRows(tableRows)

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}
}

// taskRows flattens the schedule for date into selectable rows, marking each
// task done according to that date's log.
func (m Model) taskRows(date string) []taskRow {
	schedule := m.Service.Schedule()
	log, _ := m.Service.Log(date)

	var rows []taskRow
	for _, block := range schedule.Blocks {
		window := block.StartTime + "-" + block.EndTime
		for _, task := range block.Tasks {
			rows = append(rows, taskRow{
				BlockName:   block.Name,
				BlockWindow: window,
				Task:        task,
				Done:        log.Completed(task.ID),
			})
		}
	}
	return rows
}
