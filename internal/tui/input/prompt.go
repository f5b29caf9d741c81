// Package input parses prompt line input.
package input

import (
	"errors"
	"strings"
)

// ErrNotCommand is returned for prompt input that does not start with "/".
var ErrNotCommand = errors.New("commands start with /")

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Args        string // argument hint, e.g. "<YYYY-MM-DD|today>"
	Description string
}

// Usage returns the name followed by the argument hint.
func (c PromptCommand) Usage() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

// Invocation is a parsed prompt line.
type Invocation struct {
	Name string
	Args []string
}

// Arg returns the i-th argument or "".
func (inv Invocation) Arg(i int) string {
	if i < 0 || i >= len(inv.Args) {
		return ""
	}
	return inv.Args[i]
}

// Rest joins every argument, for values that may contain spaces.
func (inv Invocation) Rest() string {
	return strings.Join(inv.Args, " ")
}

// ParsePrompt splits a prompt line into a lower-cased command name and its
// arguments.
func ParsePrompt(line string) (Invocation, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return Invocation{}, ErrNotCommand
	}
	return Invocation{Name: strings.ToLower(fields[0]), Args: fields[1:]}, nil
}

// PromptMatchingCommands returns commands that match the current input prefix.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if !strings.HasPrefix(strings.TrimSpace(input), "/") {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}
