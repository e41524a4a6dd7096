package stats

import (
	"testing"
	"time"

	"github.com/JaskiratSingh1/Verto/internal/task"
)

func seededStore(t *testing.T) *task.Store {
	t.Helper()
	s := task.Open("")
	// June 3: 1 of 4 done. June 10: 2 of 2 done. June 11: 0 of 1 done.
	for i, title := range []string{"a", "b", "c", "d"} {
		tk, _ := s.Add(title, task.NewDay(2024, time.June, 3))
		if i == 0 {
			s.Toggle(tk.Ref())
		}
	}
	for _, title := range []string{"e", "f"} {
		tk, _ := s.Add(title, task.NewDay(2024, time.June, 10))
		s.Toggle(tk.Ref())
	}
	s.Add("g", task.NewDay(2024, time.June, 11))
	return s
}

func TestCompletionRate(t *testing.T) {
	if _, ok := CompletionRate(nil); ok {
		t.Error("CompletionRate(nil): want ok=false")
	}
	tasks := []task.Task{{Done: true}, {Done: false}, {Done: true}, {Done: true}}
	rate, ok := CompletionRate(tasks)
	if !ok || rate != 0.75 {
		t.Errorf("CompletionRate = %v, %v; want 0.75, true", rate, ok)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		rate float64
		want int
	}{
		{0, 1},
		{0.25, 1},
		{0.26, 2},
		{0.5, 2},
		{0.75, 3},
		{0.76, 4},
		{1, 4},
	}
	for _, tt := range tests {
		if got := Level(tt.rate); got != tt.want {
			t.Errorf("Level(%v) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestMonth(t *testing.T) {
	cells := Month(seededStore(t), 2024, time.June)
	if len(cells) != 30 {
		t.Fatalf("len = %d, want 30", len(cells))
	}

	tests := []struct {
		dom   int
		total int
		done  int
		level int
	}{
		{1, 0, 0, 0},
		{3, 4, 1, 1},
		{10, 2, 2, 4},
		{11, 1, 0, 1},
		{30, 0, 0, 0},
	}
	for _, tt := range tests {
		c := cells[tt.dom-1]
		if c.Day != task.NewDay(2024, time.June, tt.dom) {
			t.Errorf("cell %d has day %v", tt.dom, c.Day)
		}
		if c.Total != tt.total || c.Done != tt.done || c.Level != tt.level {
			t.Errorf("June %d = %+v, want total=%d done=%d level=%d", tt.dom, c, tt.total, tt.done, tt.level)
		}
	}
}

func TestMonthLengths(t *testing.T) {
	src := task.Open("")
	if n := len(Month(src, 2024, time.February)); n != 29 {
		t.Errorf("Feb 2024 = %d days", n)
	}
	if n := len(Month(src, 2023, time.February)); n != 28 {
		t.Errorf("Feb 2023 = %d days", n)
	}
	if n := len(Month(src, 2024, time.December)); n != 31 {
		t.Errorf("Dec 2024 = %d days", n)
	}
}

func TestWeeks(t *testing.T) {
	// June 1 2024 is a Saturday.
	cells := Month(task.Open(""), 2024, time.June)

	sunday := Weeks(cells, time.Sunday)
	if len(sunday) != 6 {
		t.Fatalf("Sunday start: %d weeks, want 6", len(sunday))
	}
	for i := 0; i < 6; i++ {
		if !sunday[0][i].Empty() {
			t.Errorf("Sunday start: slot %d should be padding", i)
		}
	}
	if sunday[0][6].Day.Dom() != 1 {
		t.Errorf("Sunday start: first day in slot 6 = %v", sunday[0][6].Day)
	}

	monday := Weeks(cells, time.Monday)
	if monday[0][5].Day.Dom() != 1 {
		t.Errorf("Monday start: June 1 in wrong slot, row = %+v", monday[0])
	}
	for _, week := range monday {
		if len(week) != 7 {
			t.Errorf("week has %d slots", len(week))
		}
	}
	last := monday[len(monday)-1]
	if last[0].Day.Dom() != 24 || last[6].Day.Dom() != 30 {
		t.Errorf("Monday start: last week = %v..%v", last[0].Day, last[6].Day)
	}

	if Weeks(nil, time.Sunday) != nil {
		t.Error("Weeks(nil) should be nil")
	}
}

func TestSummarize(t *testing.T) {
	cells := Month(seededStore(t), 2024, time.June)
	s := Summarize(Weeks(cells, time.Sunday)[1])
	// Week of June 2..8 holds only June 3.
	if s.Days != 1 || s.Tasks != 4 || s.Done != 1 || s.Perfect != 0 {
		t.Errorf("week summary = %+v", s)
	}

	s = Summarize(cells)
	if s.Days != 3 || s.Tasks != 7 || s.Done != 3 || s.Perfect != 1 {
		t.Errorf("month summary = %+v", s)
	}
	if s.Streak != 0 {
		t.Errorf("Streak = %d, want 0 (June 11 not done)", s.Streak)
	}
	want := (0.25 + 1 + 0) / 3
	if s.MeanRate != want {
		t.Errorf("MeanRate = %v, want %v", s.MeanRate, want)
	}
}
