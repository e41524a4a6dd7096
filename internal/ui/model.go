package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"github.com/JaskiratSingh1/Verto/internal/logging"
	"github.com/JaskiratSingh1/Verto/internal/prefs"
	"github.com/JaskiratSingh1/Verto/internal/task"
	"github.com/JaskiratSingh1/Verto/internal/theme"
)

// Tab identifies a screen of the UI.
type Tab int

const (
	TabToday Tab = iota
	TabSettings
)

// midnight fires at the start of every local day.
var midnight = mustSchedule("0 0 * * *")

func mustSchedule(spec string) cron.Schedule {
	s, err := cron.ParseStandard(spec)
	if err != nil {
		panic(err)
	}
	return s
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for UI events.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithWeekStart sets the first column of the heatmap.
func WithWeekStart(d time.Weekday) Option {
	return func(m *Model) {
		m.weekStart = d
	}
}

// WithChanges makes the model reload the store whenever ch signals.
func WithChanges(ch <-chan struct{}) Option {
	return func(m *Model) {
		m.changes = ch
	}
}

// Model is the bubbletea model for the whole UI.
type Model struct {
	store  *task.Store
	prefs  *prefs.Store
	logger *log.Logger
	now    func() time.Time

	tab       Tab
	today     task.Day
	day       task.Day // day shown on the Today tab
	cursor    int
	adding    bool
	input     textinput.Model
	month     task.Day // first day of the month shown in the heatmap
	weekStart time.Weekday

	theme        theme.Theme
	themeCursor  int
	detectedDark bool
	styles       styles

	keys    keyMap
	help    help.Model
	notice  string
	changes <-chan struct{}
}

type (
	changedMsg  struct{}
	midnightMsg time.Time
)

// New creates the UI model over store and preferences.
func New(store *task.Store, p *prefs.Store, opts ...Option) *Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.Prompt = "+ "
	input.CharLimit = 200

	m := &Model{
		store:        store,
		prefs:        p,
		logger:       logging.Discard(),
		now:          time.Now,
		input:        input,
		weekStart:    time.Sunday,
		keys:         defaultKeyMap(),
		help:         help.New(),
		detectedDark: lipgloss.HasDarkBackground(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.today = task.DayOf(m.now())
	m.day = m.today
	m.month = firstOfMonth(m.today)
	m.setTheme(p.Theme())
	m.themeCursor = int(m.theme)
	return m
}

// Init starts the midnight timer and the change listener.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.midnightCmd()}
	if m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case changedMsg:
		m.reload()
		if m.changes == nil {
			return m, nil
		}
		return m, waitForChange(m.changes)
	case midnightMsg:
		m.rollover()
		return m, m.midnightCmd()
	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		if m.tab == TabToday {
			m.tab = TabSettings
		} else {
			m.tab = TabToday
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.tab == TabSettings {
		return m.updateSettings(msg)
	}
	return m.updateToday(msg)
}

func (m *Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.store.TasksForDay(m.day)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(tasks) {
			m.store.Toggle(tasks[m.cursor].Ref())
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(tasks) {
			m.store.Delete(tasks[m.cursor].Ref())
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Add):
		if len(tasks) >= task.MaxTasksPerDay {
			m.notice = "Day is full."
			return m, nil
		}
		m.adding = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.PrevDay):
		m.showDay(m.day.AddDays(-1))
	case key.Matches(msg, m.keys.NextDay):
		m.showDay(m.day.AddDays(1))
	case key.Matches(msg, m.keys.Today):
		m.showDay(m.today)
	}
	return m, nil
}

func (m *Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if t, ok := m.store.Add(m.input.Value(), m.day); ok {
			m.cursor = len(m.store.TasksForDay(m.day)) - 1
			m.logger.Debug("task added", "day", m.day.Date(), "id", t.ID)
		}
		m.stopAdding()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.stopAdding()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	themes := theme.All()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(themes)-1 {
			m.themeCursor++
		}
	case key.Matches(msg, m.keys.Apply):
		m.applyTheme(themes[m.themeCursor])
	case key.Matches(msg, m.keys.PrevTheme):
		m.applyTheme(m.theme.Prev())
	case key.Matches(msg, m.keys.NextTheme):
		m.applyTheme(m.theme.Next())
	case key.Matches(msg, m.keys.PrevMonth):
		m.month = firstOfMonth(m.month.AddDays(-1))
	case key.Matches(msg, m.keys.NextMonth):
		m.month = m.month.AddDays(32)
		m.month = firstOfMonth(m.month)
	}
	return m, nil
}

func (m *Model) stopAdding() {
	m.adding = false
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) showDay(d task.Day) {
	m.day = d
	m.cursor = 0
}

func (m *Model) clampCursor() {
	n := len(m.store.TasksForDay(m.day))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// applyTheme switches to t and persists it.
func (m *Model) applyTheme(t theme.Theme) {
	m.setTheme(t)
	m.themeCursor = int(t)
	if err := m.prefs.SetTheme(t); err != nil {
		m.logger.Error("saving theme failed", "theme", t, "err", err)
		m.notice = "Theme not saved: " + err.Error()
	}
}

func (m *Model) setTheme(t theme.Theme) {
	m.theme = t
	applyScheme(t, m.detectedDark)
	m.styles = newStyles(t)
}

// reload picks up changes another process wrote. While the last save failed
// the in-memory tasks are newer than the file, so they are kept.
func (m *Model) reload() {
	if err := m.store.Err(); err != nil {
		m.logger.Warn("skipping reload, unsaved changes in memory", "err", err)
		return
	}
	m.store.Reload()
	m.clampCursor()
}

// rollover moves "today" forward when the date changes. A view that was
// following today follows it to the new day.
func (m *Model) rollover() {
	now := task.DayOf(m.now())
	if now == m.today {
		return
	}
	m.logger.Debug("day rolled over", "from", m.today.Date(), "to", now.Date())
	if m.day == m.today {
		m.showDay(now)
	}
	m.today = now
}

func (m *Model) midnightCmd() tea.Cmd {
	now := m.now()
	next := midnight.Next(now)
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg {
		return midnightMsg(t)
	})
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func firstOfMonth(d task.Day) task.Day {
	return task.NewDay(d.Year(), d.Month(), 1)
}
