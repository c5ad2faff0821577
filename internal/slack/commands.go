package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdList     CommandType = "list"
	CmdSearch   CommandType = "search"
	CmdUpcoming CommandType = "upcoming"
	CmdRemind   CommandType = "remind"
	CmdSubjects CommandType = "subjects"
	CmdTimezone CommandType = "timezone"
	CmdPause    CommandType = "pause"
	CmdResume   CommandType = "resume"
	CmdStatus   CommandType = "status"
	CmdHelp     CommandType = "help"
)

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
		Raw:  text,
		Args: parts[1:],
	}

	switch parts[0] {
	case "list", "ls":
		cmd.Type = CmdList
	case "search", "find":
		cmd.Type = CmdSearch
	case "upcoming", "soon":
		cmd.Type = CmdUpcoming
	case "remind":
		cmd.Type = CmdRemind
	case "subjects", "subs":
		cmd.Type = CmdSubjects
	case "timezone", "tz":
		cmd.Type = CmdTimezone
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "status":
		cmd.Type = CmdStatus
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Browse deadlines:*
• ` + "`/deadlines list [subject] [year]`" + ` - List conferences, soonest deadline first
• ` + "`/deadlines list ML 2026 hindex`" + ` - Same, sorted by h-index (or ` + "`start`" + `)
• ` + "`/deadlines search <query>`" + ` - Search by name (e.g. ` + "`search neurips`" + `)
• ` + "`/deadlines upcoming [days]`" + ` - Deadlines due within N days (default 30)

*Reminders:*
• ` + "`/deadlines remind 3,7,30`" + ` - Set how many days before a deadline to remind you
• ` + "`/deadlines subjects ML,NLP`" + ` - Only get reminders for these subjects (` + "`subjects all`" + ` resets)
• ` + "`/deadlines timezone Europe/Vienna`" + ` - Set your display timezone
• ` + "`/deadlines pause`" + ` / ` + "`/deadlines resume`" + ` - Toggle reminders
• ` + "`/deadlines status`" + ` - Show your current reminder settings`
}
