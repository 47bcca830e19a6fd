// Package shell inspects shell commands issued through the Bash tool.
//
// It parses commands with mvdan.cc/sh/v3/syntax, the shfmt parser, so that
// quoting and command lists are understood the way the shell understands
// them.
package shell

import (
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// CommitMessages returns the messages passed with -m or --message to every
// git commit invocation in command, in order of appearance.
//
// Words that cannot be expanded statically, such as command substitutions,
// are skipped. A command that does not parse yields nil.
func CommitMessages(command string) []string {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	prog, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return nil
	}

	var messages []string
	syntax.Walk(prog, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok {
			return true
		}
		args := literalArgs(call.Args)
		if rest, ok := commitArgs(args); ok {
			messages = append(messages, messageFlags(rest)...)
		}
		return true
	})
	return messages
}

// literalArgs expands each word without an environment. Words that need
// one, or a subshell, become empty strings so positions are preserved.
func literalArgs(words []*syntax.Word) []string {
	args := make([]string, len(words))
	for i, w := range words {
		s, err := expand.Literal(nil, w)
		if err != nil {
			continue
		}
		args[i] = s
	}
	return args
}

// commitArgs returns the arguments after "commit" when args is a git commit
// invocation, skipping git's global options.
func commitArgs(args []string) ([]string, bool) {
	if len(args) == 0 || args[0] != "git" {
		return nil, false
	}
	for i := 1; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "-C" || arg == "-c":
			i++
		case strings.HasPrefix(arg, "-"):
		case arg == "commit":
			return args[i+1:], true
		default:
			return nil, false
		}
	}
	return nil, false
}

func messageFlags(args []string) []string {
	var messages []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return messages
		case arg == "-m" || arg == "--message" || arg == "-am":
			if i+1 < len(args) {
				messages = append(messages, args[i+1])
				i++
			}
		case strings.HasPrefix(arg, "--message="):
			messages = append(messages, strings.TrimPrefix(arg, "--message="))
		case strings.HasPrefix(arg, "-m"):
			messages = append(messages, strings.TrimPrefix(arg, "-m"))
		}
	}
	return messages
}
