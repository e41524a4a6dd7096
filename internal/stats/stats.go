// Package stats computes completion rates for the heatmap.
package stats

import (
	"time"

	"github.com/JaskiratSingh1/Verto/internal/task"
)

// Source is anything that can list a day's tasks; *task.Store satisfies it.
type Source interface {
	TasksForDay(day task.Day) []task.Task
}

// Cell is one day of the heatmap.
type Cell struct {
	Day   task.Day
	Total int
	Done  int
	Rate  float64 // Done/Total, 0 when Total is 0
	Level int     // 0 = no tasks, 1..4 by completion rate
}

// Empty reports whether the cell is padding outside the month.
func (c Cell) Empty() bool {
	return c.Day.IsZero()
}

// CompletionRate returns the fraction of tasks marked done. ok is false for
// an empty list.
func CompletionRate(tasks []task.Task) (rate float64, ok bool) {
	if len(tasks) == 0 {
		return 0, false
	}
	done := 0
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}
	return float64(done) / float64(len(tasks)), true
}

// Level buckets a rate into 1..4. Days with tasks but nothing done are 1.
func Level(rate float64) int {
	switch {
	case rate <= 0.25:
		return 1
	case rate <= 0.5:
		return 2
	case rate <= 0.75:
		return 3
	default:
		return 4
	}
}

// DayCell computes the heatmap cell for a single day.
func DayCell(src Source, day task.Day) Cell {
	tasks := src.TasksForDay(day)
	c := Cell{Day: day, Total: len(tasks)}
	rate, ok := CompletionRate(tasks)
	if !ok {
		return c
	}
	for _, t := range tasks {
		if t.Done {
			c.Done++
		}
	}
	c.Rate = rate
	c.Level = Level(rate)
	return c
}

// Month returns one cell per day of the given month.
func Month(src Source, year int, month time.Month) []Cell {
	first := task.NewDay(year, month, 1)
	var cells []Cell
	for d := first; d.Month() == month; d = d.AddDays(1) {
		cells = append(cells, DayCell(src, d))
	}
	return cells
}

// Weeks lays month cells out in rows of seven starting on weekStart. Slots
// before the first and after the last day are Empty cells.
func Weeks(cells []Cell, weekStart time.Weekday) [][]Cell {
	if len(cells) == 0 {
		return nil
	}
	lead := (int(cells[0].Day.Weekday()) - int(weekStart) + 7) % 7
	padded := make([]Cell, lead, lead+len(cells)+6)
	padded = append(padded, cells...)
	for len(padded)%7 != 0 {
		padded = append(padded, Cell{})
	}

	weeks := make([][]Cell, 0, len(padded)/7)
	for i := 0; i < len(padded); i += 7 {
		weeks = append(weeks, padded[i:i+7])
	}
	return weeks
}

// Summary totals a range of cells.
type Summary struct {
	Days     int // days with at least one task
	Tasks    int
	Done     int
	Perfect  int // days with every task done
	Streak   int // perfect days in a row, counting back from the latest day with tasks
	MeanRate float64
}

// Summarize totals cells, ignoring padding.
func Summarize(cells []Cell) Summary {
	var s Summary
	var totalRate float64
	for _, c := range cells {
		if c.Empty() || c.Total == 0 {
			continue
		}
		s.Days++
		s.Tasks += c.Total
		s.Done += c.Done
		totalRate += c.Rate
		if c.Done == c.Total {
			s.Perfect++
			s.Streak++
		} else {
			s.Streak = 0
		}
	}
	if s.Days > 0 {
		s.MeanRate = totalRate / float64(s.Days)
	}
	return s
}
