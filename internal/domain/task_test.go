package domain

import (
	"strings"
	"testing"
)

func TestTaskList_Add(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantErr     error
		wantLen     int
		wantText    string
	}{
		{
			name:     "valid task",
			text:     "Write report",
			wantLen:  1,
			wantText: "Write report",
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: ErrEmptyTaskText,
		},
		{
			name:    "whitespace only",
			text:    "   \t ",
			wantErr: ErrEmptyTaskText,
		},
		{
			name:     "overlong text is truncated",
			text:     strings.Repeat("x", 300),
			wantLen:  1,
			wantText: strings.Repeat("x", MaxTaskLen),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewTaskList()
			err := l.Add(tt.text)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
				}
				if l.Len() != 0 {
					t.Errorf("Add() rejected input but len = %d", l.Len())
				}
				return
			}

			if err != nil {
				t.Fatalf("Add() unexpected error: %v", err)
			}
			if l.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", l.Len(), tt.wantLen)
			}
			if got := l.Tasks()[0].Text; got != tt.wantText {
				t.Errorf("task text = %q, want %q", got, tt.wantText)
			}
			if l.Tasks()[0].Done {
				t.Error("new task should not be done")
			}
		})
	}
}

func TestTaskList_Capacity(t *testing.T) {
	l := NewTaskList()
	for i := 0; i < MaxTasks; i++ {
		if err := l.Add("task"); err != nil {
			t.Fatalf("Add() #%d failed: %v", i+1, err)
		}
	}

	if err := l.Add("one too many"); err != ErrTaskListFull {
		t.Errorf("Add() at capacity error = %v, want %v", err, ErrTaskListFull)
	}
	if l.Len() != MaxTasks {
		t.Errorf("Len() = %d, want %d", l.Len(), MaxTasks)
	}
}

func TestTaskList_MarkDoneUnmark(t *testing.T) {
	l := NewTaskList()
	_ = l.Add("a")
	_ = l.Add("b")

	if err := l.MarkDone(1); err != nil {
		t.Fatalf("MarkDone() error: %v", err)
	}
	if !l.Tasks()[1].Done {
		t.Error("task 1 should be done")
	}

	// Idempotent
	if err := l.MarkDone(1); err != nil {
		t.Fatalf("MarkDone() second call error: %v", err)
	}

	if err := l.Unmark(1); err != nil {
		t.Fatalf("Unmark() error: %v", err)
	}
	if l.Tasks()[1].Done {
		t.Error("task 1 should be undone")
	}

	if err := l.MarkDone(2); err != ErrInvalidTaskNumber {
		t.Errorf("MarkDone(2) error = %v, want %v", err, ErrInvalidTaskNumber)
	}
	if err := l.Unmark(-1); err != ErrInvalidTaskNumber {
		t.Errorf("Unmark(-1) error = %v, want %v", err, ErrInvalidTaskNumber)
	}
}

func TestTaskList_Remove(t *testing.T) {
	l := NewTaskList()
	_ = l.Add("a")
	_ = l.Add("b")
	_ = l.Add("c")

	if err := l.Remove(1); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	tasks := l.Tasks()
	if len(tasks) != 2 || tasks[0].Text != "a" || tasks[1].Text != "c" {
		t.Errorf("Remove() left %v, want [a c]", tasks)
	}

	if err := l.Remove(5); err != ErrInvalidTaskNumber {
		t.Errorf("Remove(5) error = %v, want %v", err, ErrInvalidTaskNumber)
	}
}

func TestTaskList_SelectionClamp(t *testing.T) {
	l := NewTaskList()
	_ = l.Add("a")
	_ = l.Add("b")
	_ = l.Add("c")

	l.SelectNext()
	l.SelectNext()
	if idx, ok := l.Selected(); !ok || idx != 2 {
		t.Fatalf("Selected() = %d, %v, want 2, true", idx, ok)
	}

	// No wraparound at the bottom.
	l.SelectNext()
	if idx, _ := l.Selected(); idx != 2 {
		t.Errorf("SelectNext() past end moved cursor to %d", idx)
	}

	// Removing the selected last task moves selection to the new last.
	if err := l.Remove(2); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if idx, ok := l.Selected(); !ok || idx != 1 {
		t.Errorf("Selected() after removing last = %d, %v, want 1, true", idx, ok)
	}

	// No wraparound at the top.
	l.SelectPrev()
	l.SelectPrev()
	l.SelectPrev()
	if idx, _ := l.Selected(); idx != 0 {
		t.Errorf("SelectPrev() past start moved cursor to %d", idx)
	}

	_ = l.Remove(0)
	_ = l.Remove(0)
	if _, ok := l.Selected(); ok {
		t.Error("empty list should have no valid selection")
	}
}

func TestTaskList_RoundTripOrder(t *testing.T) {
	l := NewTaskList()
	_ = l.Add("first")
	_ = l.Add("second")
	_ = l.Add("third")
	_ = l.MarkDone(0)

	reloaded := NewTaskListFrom(l.Tasks())
	got := reloaded.Tasks()
	want := l.Tasks()

	if len(got) != len(want) {
		t.Fatalf("round-trip len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("task %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseTaskNumber(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		count   int
		want    int
		wantErr bool
	}{
		{"first task", "1", 3, 0, false},
		{"last task", "3", 3, 2, false},
		{"with surrounding space", " 2 ", 3, 1, false},
		{"zero", "0", 3, 0, true},
		{"negative", "-1", 3, 0, true},
		{"beyond count", "4", 3, 0, true},
		{"beyond capacity", "101", 200, 0, true},
		{"not a number", "abc", 3, 0, true},
		{"empty", "", 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaskNumber(tt.arg, tt.count)
			if tt.wantErr {
				if err != ErrInvalidTaskNumber {
					t.Errorf("ParseTaskNumber(%q) error = %v, want %v", tt.arg, err, ErrInvalidTaskNumber)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTaskNumber(%q) unexpected error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("ParseTaskNumber(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}
