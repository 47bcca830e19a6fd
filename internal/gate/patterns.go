package gate

import (
	"path/filepath"
	"regexp"
)

const (
	// ShellToolName is the tool whose commands are inspected.
	ShellToolName = "Bash"
	// SkillName is the skill whose presence switches enforcement on.
	SkillName = "git-commit-conversation-context"
	// ContextMarker must start a line of the commit message.
	ContextMarker = "Conversation Context:"
)

// BlockMessage is written to stderr when a commit is blocked.
const BlockMessage = "❌ Git commit blocked: Missing conversation context.\n\n" +
	"Please use the /" + SkillName + " skill first to add " +
	"conversation context to your commit message.\n\n" +
	"The skill will help you document how this work came about."

var (
	// git commit as a whole command: after start, a separator or whitespace,
	// never inside a word like "mygit" or a quoted "git commit".
	gitCommitPattern     = regexp.MustCompile(`(^|[;&|]\s*|\s)git\s+commit(\s|$)`)
	contextMarkerPattern = regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(ContextMarker))
)

// IsGitCommit reports whether a tool call runs git commit through the shell tool.
func IsGitCommit(toolName, command string) bool {
	return toolName == ShellToolName && gitCommitPattern.MatchString(command)
}

// HasContextMarker reports whether any line of command starts with ContextMarker.
func HasContextMarker(command string) bool {
	return contextMarkerPattern.MatchString(command)
}

// SkillPath returns the SKILL.md that enables enforcement. A non-empty
// pluginRoot wins over the project-local .claude directory.
func SkillPath(pluginRoot, workingDirectory string) string {
	if pluginRoot != "" {
		return filepath.Join(pluginRoot, "skills", SkillName, "SKILL.md")
	}
	return filepath.Join(workingDirectory, ".claude", "skills", SkillName, "SKILL.md")
}
