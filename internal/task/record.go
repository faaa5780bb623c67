package task

import (
	"fmt"
	"strings"
)

// FieldSep separates fields in a persisted record line. Descriptions may
// contain it (the codec splits the date off the end of the line); date
// text may not, which the command parser enforces.
const FieldSep = " | "

// MarshalRecord renders the task as one save-file line, e.g.
// "D | 0 | return book | June 6th". Todos have no date field.
func (t Task) MarshalRecord() string {
	done := "0"
	if t.Done {
		done = "1"
	}
	fields := []string{t.Kind.Marker(), done, t.Description}
	if t.Kind != KindTodo {
		fields = append(fields, t.When)
	}
	return strings.Join(fields, FieldSep)
}

// ParseRecord parses one save-file line back into a task.
func ParseRecord(line string) (Task, error) {
	kindField, rest, ok := strings.Cut(line, FieldSep)
	if !ok {
		return Task{}, fmt.Errorf("record has no field separator: %q", line)
	}

	var kind Kind
	switch kindField {
	case "T":
		kind = KindTodo
	case "D":
		kind = KindDeadline
	case "E":
		kind = KindEvent
	default:
		return Task{}, fmt.Errorf("unknown kind marker %q: %q", kindField, line)
	}

	doneField, rest, ok := strings.Cut(rest, FieldSep)
	if !ok {
		return Task{}, fmt.Errorf("record has no description field: %q", line)
	}
	var done bool
	switch doneField {
	case "0":
		done = false
	case "1":
		done = true
	default:
		return Task{}, fmt.Errorf("invalid done marker %q: %q", doneField, line)
	}

	t := Task{Kind: kind, Done: done}

	if kind == KindTodo {
		// Everything after the done marker is the description, which may
		// itself contain the separator.
		t.Description = rest
		if t.Description == "" {
			return Task{}, fmt.Errorf("record has empty description: %q", line)
		}
		return t, nil
	}

	// The date is the last field. Splitting from the end keeps a
	// separator inside the description intact.
	i := strings.LastIndex(rest, FieldSep)
	if i < 0 {
		return Task{}, fmt.Errorf("%s record is missing its date field: %q", kind, line)
	}
	t.Description = rest[:i]
	t.When = rest[i+len(FieldSep):]
	if t.Description == "" {
		return Task{}, fmt.Errorf("record has empty description: %q", line)
	}
	if t.When == "" {
		return Task{}, fmt.Errorf("%s record has an empty date field: %q", kind, line)
	}
	return t, nil
}
