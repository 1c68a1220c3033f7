package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdList   CommandType = "list"
	CmdNext   CommandType = "next"
	CmdRemind CommandType = "remind"
	CmdHelp   CommandType = "help"
)

// DefaultListLimit is how many submissions `list` shows without an argument
const DefaultListLimit = 5

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "list", "ls", "history":
		cmd.Type = CmdList
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "next", "upcoming":
		cmd.Type = CmdNext
	case "remind":
		cmd.Type = CmdRemind
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

• ` + "`/coverage list [n]`" + ` - Shows the latest coverage submissions (default 5)
• ` + "`/coverage next`" + ` - Shows the upcoming weekend and its form link
• ` + "`/coverage remind`" + ` - Sends the weekly reminder now
• ` + "`/coverage help`" + ` - Shows this message`
}
