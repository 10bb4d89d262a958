package terminal

import "strings"

// Command name constants.
const (
	cmdHelp        = "help"
	cmdTargets     = "targets"
	cmdStart       = "start"
	cmdNext        = "next"
	cmdBack        = "back"
	cmdReset       = "reset"
	cmdStatus      = "status"
	cmdAssessments = "assessments"
	cmdRemove      = "remove"
	cmdClear       = "clear"
	cmdSummary     = "summary"
	cmdExport      = "export"
	cmdLang        = "lang"
	cmdQuit        = "quit"
)

// command represents one parsed input line starting with a slash.
type command struct {
	Name string
	Args []string
	Raw  string
}

// encode creates the command line.
func (c command) encode() string {
	if len(c.Args) == 0 {
		return "/" + c.Name
	}
	return "/" + c.Name + " " + strings.Join(c.Args, " ")
}

// arg returns the i-th argument or "".
func (c command) arg(i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

// decodeCommand parses a line such as "/start chest". ok is false for lines
// that are not commands.
func decodeCommand(line string) (command, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		return command{}, false
	}

	parts := strings.Fields(line[1:])
	if len(parts) == 0 {
		return command{Raw: line}, true
	}

	return command{
		Name: strings.ToLower(parts[0]),
		Args: parts[1:],
		Raw:  line,
	}, true
}
