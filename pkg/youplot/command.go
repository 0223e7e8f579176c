// Package youplot reads delimiter-separated text and draws it as a terminal
// plot.
package youplot

import (
	"fmt"
	"sort"
)

// Command is a plot command.
type Command int

const (
	Barplot Command = iota + 1
	Histogram
	Lineplot
	Lineplots
	Scatter
	Density
	Boxplot
	Count
	Colors
)

var commandNames = map[Command][]string{
	Barplot:   {"barplot", "bar"},
	Histogram: {"histogram", "hist"},
	Lineplot:  {"lineplot", "line", "l"},
	Lineplots: {"lineplots", "lines", "ls"},
	Scatter:   {"scatter", "s"},
	Density:   {"density", "d"},
	Boxplot:   {"boxplot", "box"},
	Count:     {"count", "c"},
	Colors:    {"colors", "color", "colours", "colour"},
}

// aliases maps every accepted name to its command.
var aliases = func() map[string]Command {
	m := make(map[string]Command)
	for cmd, names := range commandNames {
		for _, name := range names {
			m[name] = cmd
		}
	}
	return m
}()

// Commands returns every command in declaration order.
func Commands() []Command {
	cmds := make([]Command, 0, len(commandNames))
	for cmd := range commandNames {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i] < cmds[j] })
	return cmds
}

// ParseCommand resolves a command name or alias.
func ParseCommand(name string) (Command, error) {
	cmd, ok := aliases[name]
	if !ok {
		return 0, NewUnrecognizedCommandError(name)
	}
	return cmd, nil
}

// String returns the canonical name of the command.
func (c Command) String() string {
	if names, ok := commandNames[c]; ok {
		return names[0]
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Aliases returns the alternative names of the command.
func (c Command) Aliases() []string {
	names := commandNames[c]
	if len(names) < 2 {
		return nil
	}
	return append([]string(nil), names[1:]...)
}
