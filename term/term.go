package term

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var CmdDesc = map[string][2]string{
	"sign-in":         {"", "sign in to your account"},
	"sign-up":         {"", "create a citizen account"},
	"sign-out":        {"", "sign out and clear stored credentials"},
	"posts":           {"po", "list posts from your village"},
	"post":            {"", "show one post with its comments"},
	"comment":         {"", "comment on a post"},
	"penalties":       {"pe", "list your fines"},
	"pay":             {"", "pay an unpaid fine"},
	"notifications":   {"no", "list notifications"},
	"read":            {"", "mark a notification as read"},
	"delete":          {"", "delete a notification"},
	"profile":         {"", "show your profile"},
	"change-password": {"", "change your password"},
}

func PrintCmds(prefix string, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
		}

		styled := color.New(color.Bold, ColorHiCyan).Sprintf(" inteko %s ", cmd)
		fmt.Printf("%s%s 👉 %s\n", prefix, styled, desc)
	}
}
