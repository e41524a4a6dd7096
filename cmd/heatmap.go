package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/JaskiratSingh1/Verto/internal/stats"
	"github.com/JaskiratSingh1/Verto/internal/task"
)

// heatGlyphs marks completion levels 0 (no tasks) through 4.
var heatGlyphs = [...]string{"·", "░", "▒", "▓", "█"}

func heatmapCommand(e *env, args []string) error {
	fs := newFlagSet("heatmap", e)
	monthArg := fs.String("month", "", "Month to show (YYYY-MM, default current month)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	current := now()
	year, month := current.Year(), current.Month()
	if *monthArg != "" {
		parsed, err := time.Parse("2006-01", *monthArg)
		if err != nil {
			return fmt.Errorf("invalid month %q (want YYYY-MM)", *monthArg)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	th := e.openPrefs().Theme()
	cells := stats.Month(e.openStore(), year, month)
	weekStart := e.cfg.FirstWeekday()
	today := task.DayOf(current)

	fmt.Fprintln(e.stdout, task.NewDay(year, month, 1).Time().Format("January 2006"))
	var header []string
	for i := 0; i < 7; i++ {
		header = append(header, fmt.Sprintf("%-3s", time.Weekday((int(weekStart)+i)%7).String()[:2]))
	}
	fmt.Fprintln(e.stdout, strings.TrimRight(strings.Join(header, " "), " "))

	for _, week := range stats.Weeks(cells, weekStart) {
		var row []string
		for _, c := range week {
			if c.Empty() {
				row = append(row, "    ")
				continue
			}
			glyph := lipgloss.NewStyle().Foreground(th.Heat(c.Level)).Render(heatGlyphs[c.Level])
			mark := " "
			if c.Day == today {
				mark = "*"
			}
			row = append(row, fmt.Sprintf("%2d", c.Day.Dom())+glyph+mark)
		}
		fmt.Fprintln(e.stdout, strings.TrimRight(strings.Join(row, ""), " "))
	}

	sum := stats.Summarize(cells)
	fmt.Fprintln(e.stdout)
	fmt.Fprintf(e.stdout, "Legend: %s none  %s ≤25%%  %s ≤50%%  %s ≤75%%  %s >75%%\n",
		heatGlyphs[0], heatGlyphs[1], heatGlyphs[2], heatGlyphs[3], heatGlyphs[4])
	if sum.Days == 0 {
		fmt.Fprintln(e.stdout, "No tasks this month.")
		return nil
	}
	fmt.Fprintf(e.stdout, "%d days with tasks, %d/%d done (%.0f%% average), %d perfect, current streak %d\n",
		sum.Days, sum.Done, sum.Tasks, sum.MeanRate*100, sum.Perfect, sum.Streak)
	return nil
}
