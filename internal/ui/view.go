package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/JaskiratSingh1/Verto/internal/stats"
	"github.com/JaskiratSingh1/Verto/internal/task"
	"github.com/JaskiratSingh1/Verto/internal/theme"
)

func (m *Model) View() string {
	var b strings.Builder
	m.writeTabs(&b)

	switch m.tab {
	case TabSettings:
		m.writeHeatmap(&b)
		m.writeThemes(&b)
	default:
		m.writeDay(&b)
	}

	m.writeStatus(&b)
	b.WriteString(m.help.View(tabKeys{keys: m.keys, tab: m.tab, adding: m.adding}))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) writeTabs(b *strings.Builder) {
	b.WriteString(m.styles.title.Render("Verto"))
	b.WriteString("  ")
	for i, name := range []string{"Today", "Settings"} {
		style := m.styles.tab
		if Tab(i) == m.tab {
			style = m.styles.activeTab
		}
		b.WriteString(style.Render(name))
	}
	b.WriteString("\n\n")
}

func (m *Model) writeDay(b *strings.Builder) {
	tasks := m.store.TasksForDay(m.day)

	heading := m.day.Time().Format("Monday, January 2 2006")
	switch {
	case m.day == m.today:
		heading += " (today)"
	case m.day == m.today.AddDays(-1):
		heading += " (yesterday)"
	case m.day == m.today.AddDays(1):
		heading += " (tomorrow)"
	}
	b.WriteString(m.styles.heading.Render(heading))
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("  %d/%d", len(tasks), task.MaxTasksPerDay)))
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(m.styles.muted.Render("  Nothing planned. Press a to add a task."))
		b.WriteString("\n")
	}
	for i, t := range tasks {
		b.WriteString(m.formatTask(t, i == m.cursor && !m.adding))
		b.WriteString("\n")
	}

	if m.adding {
		b.WriteString("\n  ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else if len(tasks) >= task.MaxTasksPerDay {
		b.WriteString("\n")
		b.WriteString(m.styles.warn.Render("  Day is full."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m *Model) formatTask(t task.Task, selected bool) string {
	box := "[ ]"
	title := t.Title
	if t.Done {
		box = "[x]"
		title = m.styles.done.Render(title)
	}
	if selected {
		return m.styles.cursor.Render("> "+box) + " " + title
	}
	return "  " + box + " " + title
}

func (m *Model) writeHeatmap(b *strings.Builder) {
	cells := stats.Month(m.store, m.month.Year(), m.month.Month())
	weeks := stats.Weeks(cells, m.weekStart)

	b.WriteString(m.styles.heading.Render(m.month.Time().Format("January 2006")))
	b.WriteString("\n\n")

	var header []string
	for i := 0; i < 7; i++ {
		header = append(header, time.Weekday((int(m.weekStart)+i)%7).String()[:2])
	}
	b.WriteString("  " + strings.Join(header, " ") + "\n")

	for _, week := range weeks {
		b.WriteString(" ")
		for _, c := range week {
			b.WriteString(" ")
			b.WriteString(m.heatCell(c))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	for level := 0; level < theme.HeatLevels; level++ {
		b.WriteString(m.styles.heat[level].Render("■"))
	}
	sum := stats.Summarize(cells)
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("  %d days, %d/%d done, %d perfect",
		sum.Days, sum.Done, sum.Tasks, sum.Perfect)))
	b.WriteString("\n\n")
}

// heatCell renders one day as two columns: a colored day number, marked when
// it is today.
func (m *Model) heatCell(c stats.Cell) string {
	if c.Empty() {
		return "  "
	}
	text := fmt.Sprintf("%2d", c.Day.Dom())
	style := m.styles.heat[c.Level]
	if c.Day == m.today {
		style = style.Underline(true)
	}
	return style.Render(text)
}

func (m *Model) writeThemes(b *strings.Builder) {
	b.WriteString(m.styles.heading.Render("Theme"))
	b.WriteString("\n\n")
	for i, t := range theme.All() {
		line := t.String()
		if t == m.theme {
			line += " (current)"
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.cursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m *Model) writeStatus(b *strings.Builder) {
	if err := m.store.Err(); err != nil {
		b.WriteString(m.styles.err.Render("Not saved: " + err.Error()))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(m.styles.warn.Render(m.notice))
		b.WriteString("\n")
	}
}
