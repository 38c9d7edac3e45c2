package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kailas-cloud/jobmatch/internal/domain/job"
	"github.com/kailas-cloud/jobmatch/internal/domain/search/result"
	recommenduc "github.com/kailas-cloud/jobmatch/internal/usecase/recommend"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("39"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// renderRecommendations lays out ranked postings in the order given.
func renderRecommendations(items []result.Scored) string {
	t := newTable("#", "Title", "Country", "Hourly", "Rate", "Budget", "Similarity")
	for i := range items {
		r := items[i].Record()
		t.Row(
			strconv.Itoa(i+1),
			r.Title(),
			r.Country(),
			strconv.FormatBool(r.IsHourly()),
			formatAmount(r.HourlyLow())+"-"+formatAmount(r.HourlyHigh()),
			formatAmount(r.Budget()),
			strconv.FormatFloat(items[i].Similarity(), 'f', 4, 64),
		)
	}
	return t.String()
}

func renderModel(info recommenduc.ModelInfo) string {
	t := newTable("Field", "Value")
	t.Row("id", info.ID)
	t.Row("fitted_at", info.FittedAt.Format(time.RFC3339))
	t.Row("documents", strconv.Itoa(info.Documents))
	t.Row("vocabulary", strconv.Itoa(info.VocabularySize))
	t.Row("max_features", strconv.Itoa(info.MaxFeatures))
	t.Row("fingerprint", info.Fingerprint)
	return t.String()
}

func renderStats(stats recommenduc.CorpusStats) string {
	t := newTable("Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max")
	add := func(name string, s job.Summary) {
		t.Row(name,
			strconv.Itoa(s.Count),
			formatStat(s.Mean), formatStat(s.Std), formatStat(s.Min),
			formatStat(s.P25), formatStat(s.P50), formatStat(s.P75), formatStat(s.Max),
		)
	}
	add("hourly_low", stats.Salary.HourlyLow)
	add("hourly_high", stats.Salary.HourlyHigh)
	add("budget", stats.Salary.Budget)

	var b strings.Builder
	fmt.Fprintf(&b, "%d postings, fingerprint %s\n", stats.Records, stats.Fingerprint)
	b.WriteString(t.String())
	return b.String()
}

func renderNotice(msg string) string {
	return noticeStyle.Render(msg)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
