package domain

import "strings"

// CommandType enumerates the typed commands the interpreter produces.
type CommandType int

const (
	CommandNone CommandType = iota
	CommandAddTask
	CommandSetFocusTask
	CommandMarkDone
	CommandUnmark
	CommandRemove
	CommandStartFocus
	CommandStartBreak
	CommandStop
	CommandSkip
	CommandQuit
	CommandHelp
)

// Command is the result of interpreting one line of input.
type Command struct {
	Type CommandType
	Arg  string
}

// ParseCommand interprets a line of free-text input (newline already
// stripped). It is total over all inputs: anything that matches no rule
// becomes a quick-add for the task list.
//
// Rules, in order:
//  1. empty or whitespace-only -> None
//  2. a single character       -> session shortcut (f/b/s/d/q/h/?)
//  3. a prefix letter in {a,t,d,u,r} followed by a space or tab -> command
//     with the remainder as its argument
//  4. anything else            -> AddTask with the whole trimmed text
//
// Note the overload on 'd': bare "d" is Skip, "d <n>" is MarkDone. The
// only disambiguator is the separator after the letter. This is how the
// format has always worked, so it is preserved exactly.
func ParseCommand(input string) Command {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Command{Type: CommandNone}
	}

	if len(trimmed) == 1 {
		switch trimmed[0] {
		case 'f':
			return Command{Type: CommandStartFocus}
		case 'b':
			return Command{Type: CommandStartBreak}
		case 's':
			return Command{Type: CommandStop}
		case 'd':
			return Command{Type: CommandSkip}
		case 'q':
			return Command{Type: CommandQuit}
		case 'h', '?':
			return Command{Type: CommandHelp}
		}
	}

	if len(trimmed) >= 2 && (trimmed[1] == ' ' || trimmed[1] == '\t') {
		// The argument keeps any whitespace beyond the single separator.
		arg := trimmed[2:]
		switch trimmed[0] {
		case 'a':
			return Command{Type: CommandAddTask, Arg: arg}
		case 't':
			return Command{Type: CommandSetFocusTask, Arg: arg}
		case 'd':
			return Command{Type: CommandMarkDone, Arg: arg}
		case 'u':
			return Command{Type: CommandUnmark, Arg: arg}
		case 'r':
			return Command{Type: CommandRemove, Arg: arg}
		}
	}

	return Command{Type: CommandAddTask, Arg: trimmed}
}
