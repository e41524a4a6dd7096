package cmd

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/JaskiratSingh1/Verto/internal/task"
)

var (
	errDayFull    = errors.New("day is full")
	errEmptyTitle = errors.New("empty title")
)

// dayFlag is a -day flag value. Unset means today.
type dayFlag struct {
	day task.Day
	set bool
}

func (f *dayFlag) String() string {
	if !f.set {
		return "today"
	}
	return f.day.Date()
}

func (f *dayFlag) Set(s string) error {
	d, err := parseDayArg(s)
	if err != nil {
		return err
	}
	f.day, f.set = d, true
	return nil
}

// Day returns the chosen day, resolving "today" at call time.
func (f *dayFlag) Day() task.Day {
	if f.set {
		return f.day
	}
	return task.DayOf(now())
}

// parseDayArg accepts a date or one of today, yesterday and tomorrow.
func parseDayArg(s string) (task.Day, error) {
	today := task.DayOf(now())
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "tomorrow":
		return today.AddDays(1), nil
	}
	d, err := task.ParseDay(s)
	if err != nil {
		return task.Day{}, fmt.Errorf("invalid day %q (want YYYY-MM-DD, today, yesterday or tomorrow)", s)
	}
	return d, nil
}

func dayFlagSet(name string, e *env) (*flag.FlagSet, *dayFlag) {
	fs := newFlagSet(name, e)
	day := &dayFlag{}
	fs.Var(day, "day", "Day (YYYY-MM-DD, today, yesterday, tomorrow)")
	return fs, day
}

// addCommand adds a task. Unlike the store, which ignores them silently, it
// reports a full day or an empty title as errors.
func addCommand(e *env, args []string) error {
	fs, dayArg := dayFlagSet("add", e)
	if err := fs.Parse(args); err != nil {
		return err
	}
	day := dayArg.Day()
	title := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if title == "" {
		return errEmptyTitle
	}

	store := e.openStore()
	if n := len(store.TasksForDay(day)); n >= task.MaxTasksPerDay {
		return fmt.Errorf("%w: %s already has %d tasks", errDayFull, day.Date(), n)
	}
	t, ok := store.Add(title, day)
	if !ok {
		return fmt.Errorf("could not add task to %s", day.Date())
	}
	if err := store.Err(); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	n := len(store.TasksForDay(day))
	fmt.Fprintf(e.stdout, "Added to %s (%d/%d): %s\n", day.Date(), n, task.MaxTasksPerDay, t.Title)
	return nil
}

func lsCommand(e *env, args []string) error {
	fs, dayArg := dayFlagSet("ls", e)
	verbose := fs.Bool("v", false, "Show task ids")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	day := dayArg.Day()
	tasks := e.openStore().TasksForDay(day)

	fmt.Fprintf(e.stdout, "%s  %d/%d\n", day.Time().Format("Monday, January 2 2006"), len(tasks), task.MaxTasksPerDay)
	if len(tasks) == 0 {
		fmt.Fprintln(e.stdout, "  No tasks.")
		return nil
	}
	for i, t := range tasks {
		printTask(e, i+1, t, *verbose)
	}
	return nil
}

func printTask(e *env, n int, t task.Task, verbose bool) {
	box := "[ ]"
	if t.Done {
		box = "[x]"
	}
	if verbose {
		fmt.Fprintf(e.stdout, "  %d. %s %s  (%s)\n", n, box, t.Title, t.ID)
		return
	}
	fmt.Fprintf(e.stdout, "  %d. %s %s\n", n, box, t.Title)
}

func toggleCommand(e *env, args []string) error {
	store, t, err := selectTask("toggle", e, args)
	if err != nil {
		return err
	}
	store.Toggle(t.Ref())
	if err := store.Err(); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	if t.Done {
		fmt.Fprintf(e.stdout, "Not done: %s\n", t.Title)
	} else {
		fmt.Fprintf(e.stdout, "Done: %s\n", t.Title)
	}
	return nil
}

func rmCommand(e *env, args []string) error {
	store, t, err := selectTask("rm", e, args)
	if err != nil {
		return err
	}
	store.Delete(t.Ref())
	if err := store.Err(); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	fmt.Fprintf(e.stdout, "Deleted: %s\n", t.Title)
	return nil
}

// selectTask parses "[-day D] <n|id-prefix>" and finds the task.
func selectTask(name string, e *env, args []string) (*task.Store, task.Task, error) {
	fs, dayArg := dayFlagSet(name, e)
	if err := fs.Parse(args); err != nil {
		return nil, task.Task{}, err
	}
	if fs.NArg() != 1 {
		return nil, task.Task{}, fmt.Errorf("usage: verto %s [-day D] <n|id-prefix>", name)
	}
	day := dayArg.Day()
	store := e.openStore()
	t, err := findTask(store.TasksForDay(day), fs.Arg(0))
	if err != nil {
		return nil, task.Task{}, fmt.Errorf("%s: %w", day.Date(), err)
	}
	return store, t, nil
}

// findTask resolves a 1-based position or a unique id prefix.
func findTask(tasks []task.Task, arg string) (task.Task, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(tasks) {
			return task.Task{}, fmt.Errorf("no task #%d (have %d)", n, len(tasks))
		}
		return tasks[n-1], nil
	}

	var matches []task.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return task.Task{}, fmt.Errorf("no task with id %q", arg)
	case 1:
		return matches[0], nil
	default:
		return task.Task{}, fmt.Errorf("id prefix %q matches %d tasks", arg, len(matches))
	}
}
