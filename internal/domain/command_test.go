package domain

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Command
	}{
		{"empty", "", Command{Type: CommandNone}},
		{"whitespace only", "   \t  ", Command{Type: CommandNone}},
		{"start focus", "f", Command{Type: CommandStartFocus}},
		{"start break", "b", Command{Type: CommandStartBreak}},
		{"stop", "s", Command{Type: CommandStop}},
		{"bare d is skip, not mark done", "d", Command{Type: CommandSkip}},
		{"quit", "q", Command{Type: CommandQuit}},
		{"help h", "h", Command{Type: CommandHelp}},
		{"help question mark", "?", Command{Type: CommandHelp}},
		{"single char with surrounding space", "  f  ", Command{Type: CommandStartFocus}},
		{"add task", "a Write report", Command{Type: CommandAddTask, Arg: "Write report"}},
		{"add task tab separator", "a\tWrite report", Command{Type: CommandAddTask, Arg: "Write report"}},
		{"set focus task", "t deep work", Command{Type: CommandSetFocusTask, Arg: "deep work"}},
		{"mark done with argument", "d 3", Command{Type: CommandMarkDone, Arg: "3"}},
		{"unmark", "u 1", Command{Type: CommandUnmark, Arg: "1"}},
		{"remove", "r 2", Command{Type: CommandRemove, Arg: "2"}},
		{"argument keeps extra leading space", "a  padded", Command{Type: CommandAddTask, Arg: " padded"}},
		{"quick add fallback", "Buy milk", Command{Type: CommandAddTask, Arg: "Buy milk"}},
		{"quick add single unknown char", "z", Command{Type: CommandAddTask, Arg: "z"}},
		{"quick add prefix letter without separator", "done", Command{Type: CommandAddTask, Arg: "done"}},
		{"quick add unknown prefix with space", "x 1", Command{Type: CommandAddTask, Arg: "x 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCommand(tt.input)
			if got != tt.want {
				t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
