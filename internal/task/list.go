package task

import "fmt"

// IndexError reports a user-facing index that is outside the current list.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("task %d does not exist: the list is empty", e.Index)
	}
	return fmt.Sprintf("task %d does not exist: the list has %d task(s)", e.Index, e.Size)
}

// List is an ordered collection of tasks. Indices exposed to callers are
// 1-based; deleting shifts later tasks down without reordering survivors.
type List struct {
	tasks []Task
}

// NewList creates a list seeded with the given tasks.
func NewList(tasks ...Task) *List {
	return &List{tasks: append([]Task(nil), tasks...)}
}

// Len returns the number of tasks in the list.
func (l *List) Len() int {
	return len(l.tasks)
}

// Add appends a task to the end of the list.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// Get returns the task at 1-based index n.
func (l *List) Get(n int) (Task, error) {
	if n < 1 || n > len(l.tasks) {
		return Task{}, &IndexError{Index: n, Size: len(l.tasks)}
	}
	return l.tasks[n-1], nil
}

// Delete removes and returns the task at 1-based index n.
func (l *List) Delete(n int) (Task, error) {
	if n < 1 || n > len(l.tasks) {
		return Task{}, &IndexError{Index: n, Size: len(l.tasks)}
	}
	removed := l.tasks[n-1]
	l.tasks = append(l.tasks[:n-1], l.tasks[n:]...)
	return removed, nil
}

// MarkDone marks the task at 1-based index n complete and returns it.
// Marking a task that is already done is not an error.
func (l *List) MarkDone(n int) (Task, error) {
	if n < 1 || n > len(l.tasks) {
		return Task{}, &IndexError{Index: n, Size: len(l.tasks)}
	}
	l.tasks[n-1].MarkDone()
	return l.tasks[n-1], nil
}

// Find returns a new list with the tasks whose description matches keyword,
// preserving their relative order. The empty keyword matches everything.
func (l *List) Find(keyword string) *List {
	found := &List{}
	for _, t := range l.tasks {
		if t.Matches(keyword) {
			found.Add(t)
		}
	}
	return found
}

// Contains reports whether an equal task is present in the list.
func (l *List) Contains(t Task) bool {
	for _, have := range l.tasks {
		if have == t {
			return true
		}
	}
	return false
}

// Tasks returns a copy of the underlying sequence, for persistence.
func (l *List) Tasks() []Task {
	return append([]Task(nil), l.tasks...)
}
