package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/commitgate/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "commitgate",
	Short: "Require conversation context in git commits made by Claude Code",
	Long: `commitgate is a PreToolUse hook for Claude Code.

When the git-commit-conversation-context skill is installed, every
"git commit" run through the Bash tool must carry a commit message line
starting with "Conversation Context:". Commits without it are blocked
until the skill has been used to write that context.

Environment:
  SKIP_COMMIT_HOOK=1   disable the hook
  CLAUDE_PLUGIN_ROOT   plugin root path (set by Claude Code)
  DEBUG_HOOK=1         append debug logs to /tmp/claude-hook-check-git-commit.log`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// ExitError carries a hook exit code back to Execute.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// exitFor returns the error that makes Execute exit with the decision's code.
func exitFor(d domain.Decision) error {
	if code := d.ExitCode(); code != domain.ExitAllow {
		return &ExitError{Code: code}
	}
	return nil
}

// Execute runs the root command and exits the process. Only the hook's own
// exit codes are used: any other failure is reported and allowed.
func Execute() {
	os.Exit(exitCode(rootCmd.Execute(), os.Stderr))
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return domain.ExitAllow
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "Hook error (non-blocking): %v\n", err)
	return domain.ExitAllow
}

func init() {
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(checkCmd)
}
