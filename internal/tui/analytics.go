package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/taskflow/internal/core"
	"github.com/sadopc/taskflow/internal/model"
)

type analyticsModel struct {
	core   *core.App
	width  int
	height int

	project model.Project
	data    model.ProjectAnalytics

	chart barchart.Model
}

func newAnalyticsModel(c *core.App) analyticsModel {
	return analyticsModel{
		core:  c,
		chart: barchart.New(60, 12),
	}
}

func (a *analyticsModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

type analyticsDataMsg struct {
	project model.Project
	data    model.ProjectAnalytics
}

func (a analyticsModel) refresh() tea.Cmd {
	r, id := a.core.Repo, a.core.Nav.State().ProjectID
	return func() tea.Msg {
		p, err := r.Project(id)
		if err != nil {
			return errStatus("load project", err)
		}
		data, err := r.Analytics(id)
		if err != nil {
			return errStatus("load analytics", err)
		}
		return analyticsDataMsg{project: p, data: data}
	}
}

func (a analyticsModel) update(msg tea.Msg) (analyticsModel, tea.Cmd) {
	if msg, ok := msg.(analyticsDataMsg); ok {
		a.project = msg.project
		a.data = msg.data
		a.buildChart()
	}
	return a, nil
}

func (a *analyticsModel) buildChart() {
	chartWidth := a.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if a.height > 30 {
		chartHeight = 16
	}

	a.chart = barchart.New(chartWidth, chartHeight)

	style := lipgloss.NewStyle().Foreground(colorPrimary)
	var bars []barchart.BarData
	for _, w := range a.data.WeeklyData {
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("W%d", w.Week),
			Values: []barchart.BarValue{{
				Name:  fmt.Sprintf("W%d", w.Week),
				Value: w.Value,
				Style: style,
			}},
		})
	}
	if len(bars) == 0 {
		bars = []barchart.BarData{{
			Label:  "-",
			Values: []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}},
		}}
	}

	a.chart.PushAll(bars)
	a.chart.Draw()
}

func (a analyticsModel) view() string {
	t := a.core.I18n.T
	w := a.width - 4
	d := a.data

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(t("Analytics")), "  ", mutedStyle.Render(a.project.Title),
	)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard(t("CompletionRate"), fmt.Sprintf("%d%%", d.TaskCompletionRate), signed(d.CompletionRateChange, "%")),
		statCard(t("Timeline"), fmt.Sprintf("%d %s", d.ProjectTimelineDays, t("Days")), signed(d.TimelineChange, "")),
	)

	counts := strings.Join([]string{
		successStyle.Render(fmt.Sprintf("● %s %d", t("Completed"), d.CompletedTasks)),
		warningStyle.Render(fmt.Sprintf("● %s %d", t("InProgress"), d.InProgressTasks)),
		mutedStyle.Render(fmt.Sprintf("● %s %d", t("Pending"), d.PendingTasks)),
	}, "   ")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", cards, "", counts, "",
			titleStyle.Render(t("WeeklyActivity")), a.chart.View(),
		),
	)
}

func statCard(label, value, change string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(label),
		highlightStyle.Bold(true).Render(value),
		change,
	)
	return panelStyle.Padding(0, 2).MarginRight(1).Render(body)
}

// signed renders a change value; zero renders empty.
func signed(v int, unit string) string {
	switch {
	case v > 0:
		return successStyle.Render(fmt.Sprintf("+%d%s", v, unit))
	case v < 0:
		return errorStyle.Render(fmt.Sprintf("%d%s", v, unit))
	}
	return ""
}
