package views

import (
	"fmt"
	"strings"
)

type TaskRowData struct {
	ID     string
	Title  string
	MustDo bool
	Done   bool
}

type BlockData struct {
	Name   string
	Window string
	Tasks  []TaskRowData
}

type DayPanelData struct {
	Heading      string
	Date         string
	Blocks       []BlockData
	SelectedID   string
	Done         int
	Total        int
	RatePct      int
	Kept         bool
	ProgressView string
	ListView     string
	Actions      string
}

type StreakBadgeData struct {
	Current     int
	Best        int
	FreezesUsed int
}

type StatsBucketData struct {
	Label   string
	Bar     string
	Pct     int
	Avg     float64
	Current bool
}

type RankRowData struct {
	Title string
	Value string
}

type StatsPanelData struct {
	Period     string
	TableView  string
	Buckets    []StatsBucketData
	MostMissed []RankRowData
	TopDone    []RankRowData
	Lifetime   int
}

type SettingsRowData struct {
	Label string
	Value string
}

type SettingsPanelData struct {
	Rows   []SettingsRowData
	Cursor int
}

type HelpPanelData struct {
	CurrentView  string
	Bindings     []string
	HelpView     string
	MarkdownView string
}

// RenderDayPanel draws one day's routine grouped by block, with a checkbox
// per task and the keep-condition summary at the bottom.
func RenderDayPanel(data DayPanelData) string {
	var b strings.Builder
	b.WriteString(data.Heading + ":\n")
	b.WriteString(fmt.Sprintf("date: %s\n", data.Date))
	if data.Actions != "" {
		b.WriteString("actions: " + data.Actions + "\n")
	}
	if data.ListView != "" {
		b.WriteString(data.ListView + "\n")
	}

	if len(data.Blocks) == 0 {
		b.WriteString("(routine empty)\n")
	}
	for _, block := range data.Blocks {
		b.WriteString(fmt.Sprintf("\n%s (%s):\n", block.Name, block.Window))
		for _, task := range block.Tasks {
			cursor := " "
			if data.SelectedID == task.ID {
				cursor = ">"
			}
			box := "[ ]"
			if task.Done {
				box = "[x]"
			}
			marker := ""
			if task.MustDo {
				marker = " *"
			}
			b.WriteString(fmt.Sprintf("%s %s %s%s\n", cursor, box, task.Title, marker))
		}
	}

	kept := "no"
	if data.Kept {
		kept = "yes"
	}
	b.WriteString(fmt.Sprintf("\ndone: %d/%d (%d%%) | streak kept: %s\n", data.Done, data.Total, data.RatePct, kept))
	if data.ProgressView != "" {
		b.WriteString(data.ProgressView + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderStreakBadge(data StreakBadgeData) string {
	out := fmt.Sprintf("streak: %d | best: %d", data.Current, data.Best)
	if data.FreezesUsed > 0 {
		out += fmt.Sprintf(" | freezes used: %d", data.FreezesUsed)
	}
	return out
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("period: %s\n", data.Period))
	b.WriteString("actions: [d]days [w]weeks [m]months [y]years\n")
	if data.TableView != "" {
		b.WriteString(data.TableView + "\n")
	}

	for _, bucket := range data.Buckets {
		marker := " "
		if bucket.Current {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-8s %s %3d%% (avg %.1f/day)\n", marker, bucket.Label, bucket.Bar, bucket.Pct, bucket.Avg))
	}

	if len(data.MostMissed) > 0 {
		b.WriteString("\nmost missed:\n")
		for i, row := range data.MostMissed {
			b.WriteString(fmt.Sprintf("%2d. %s (%s)\n", i+1, row.Title, row.Value))
		}
	}
	if len(data.TopDone) > 0 {
		b.WriteString("\ntop completed:\n")
		for i, row := range data.TopDone {
			b.WriteString(fmt.Sprintf("%2d. %s (%s)\n", i+1, row.Title, row.Value))
		}
	}
	b.WriteString(fmt.Sprintf("\nlifetime completed: %d", data.Lifetime))
	return strings.TrimSpace(b.String())
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString("actions: [j/k]move [h/l]adjust [space]toggle\n\n")
	for i, row := range data.Rows {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-22s %s\n", cursor, row.Label, row.Value))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	out := fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
	if data.MarkdownView != "" {
		out += "\n" + data.MarkdownView
	}
	return out
}
