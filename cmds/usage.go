package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage() {
	p.FprintUsage(os.Stderr)
}

func (p *Executor) FprintUsage(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fprintCommands(tw, p.commands, 0)
	return tw.Flush()
}

func fprintCommands(w io.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}

		words := append([]string{indent + name}, command.argNames()...)
		line := strings.Join(words, " ")
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		fmt.Fprintf(w, "%s\t%s\n", line, command.Description)

		if len(command.Subs) > 0 {
			fprintCommands(w, command.Subs, depth+1)
		}
	}
}
