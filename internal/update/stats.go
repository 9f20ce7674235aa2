package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/stats"
	"github.com/sandeepkv93/routined/internal/views"
)

func (m Model) handleStatsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "d":
		m.Stats.Period = stats.PeriodDays
		m.Status = StatusBar{Text: "stats period: days", IsError: false}
	case "w":
		m.Stats.Period = stats.PeriodWeeks
		m.Status = StatusBar{Text: "stats period: weeks", IsError: false}
	case "m":
		m.Stats.Period = stats.PeriodMonths
		m.Status = StatusBar{Text: "stats period: months", IsError: false}
	case "y":
		m.Stats.Period = stats.PeriodYears
		m.Status = StatusBar{Text: "stats period: years", IsError: false}
	}
	return m
}

func (m Model) statsAggregator() *stats.Aggregator {
	return stats.NewAggregator(m.Service.Schedule(), m.Service.Logs())
}

// statsNow anchors the aggregation windows on the service's current day so
// tests with a fixed clock see deterministic buckets.
func (m Model) statsNow() time.Time {
	t, err := model.ParseDay(m.Service.Today())
	if err != nil {
		return time.Now().UTC()
	}
	return t
}

func (m Model) renderStatsView() string {
	agg := m.statsAggregator()
	now := m.statsNow()
	buckets := agg.Buckets(m.Stats.Period, now)
	dates := stats.DateRange(m.Stats.Period, now)

	bucketData := make([]views.StatsBucketData, 0, len(buckets))
	for _, bucket := range buckets {
		bucketData = append(bucketData, views.StatsBucketData{
			Label:   bucket.Label,
			Bar:     progressBar(bucket.CompletionPercentage/100, 20),
			Pct:     int(bucket.CompletionPercentage),
			Avg:     bucket.CompletedCount,
			Current: bucket.IsCurrent,
		})
	}

	missed := make([]views.RankRowData, 0)
	for _, row := range agg.MostMissed(dates) {
		missed = append(missed, views.RankRowData{
			Title: row.Title,
			Value: fmt.Sprintf("missed %d", row.MissedCount),
		})
	}
	top := make([]views.RankRowData, 0)
	for _, row := range agg.TopByRate(dates) {
		top = append(top, views.RankRowData{
			Title: row.Title,
			Value: fmt.Sprintf("%d done, %s", row.CompletedCount, formatPercent(row.RatePercent)),
		})
	}

	return views.RenderStatsPanel(views.StatsPanelData{
		Period:     string(m.Stats.Period),
		TableView:  m.statsTable.View(),
		Buckets:    bucketData,
		MostMissed: missed,
		TopDone:    top,
		Lifetime:   agg.LifetimeCompleted(),
	})
}

func formatPercent(pct float64) string {
	return fmt.Sprintf("%d%%", int(pct))
}

func formatAverage(avg float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", avg), ".0")
}
