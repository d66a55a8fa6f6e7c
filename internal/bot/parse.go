package bot

import "strings"

// DefaultPrefix marks a chat message as a command.
const DefaultPrefix = ","

// Command is a parsed chat command: a lowercase verb and the rest of the line.
type Command struct {
	Verb     string
	Argument string
}

// ParseCommand splits a prefixed chat line into verb and argument. ok is
// false when the line lacks the prefix or has nothing after it.
func ParseCommand(prefix, raw string) (Command, bool) {
	if prefix == "" || !strings.HasPrefix(raw, prefix) {
		return Command{}, false
	}

	fields := strings.Fields(strings.TrimPrefix(raw, prefix))
	if len(fields) == 0 {
		return Command{}, false
	}

	return Command{
		Verb:     strings.ToLower(fields[0]),
		Argument: strings.Join(fields[1:], " "),
	}, true
}
