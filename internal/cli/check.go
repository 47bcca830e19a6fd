package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/commitgate/internal/adapters/logger"
	"github.com/emiliopalmerini/commitgate/internal/domain"
	"github.com/emiliopalmerini/commitgate/internal/gate"
	"github.com/emiliopalmerini/commitgate/internal/infrastructure/config"
	"github.com/emiliopalmerini/commitgate/internal/shell"
)

var (
	checkCommand string
	checkCwd     string
	checkTool    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a command against the gate without a hook host",
	Long: `Builds a PreToolUse event from flags and runs the same checks as "hook",
printing the outcome instead of relying on the exit code alone.

Examples:
  commitgate check --command 'git commit -m "fix bug"'
  commitgate check --command 'git commit -m "fix"' --cwd ~/src/project`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkCommand, "command", "", "shell command to evaluate")
	checkCmd.Flags().StringVar(&checkCwd, "cwd", "", "working directory of the event (default: current directory)")
	checkCmd.Flags().StringVar(&checkTool, "tool", gate.ShellToolName, "tool name of the event")
	_ = checkCmd.MarkFlagRequired("command")
}

func runCheck(cmd *cobra.Command, args []string) error {
	env, err := config.LoadHook()
	if err != nil {
		return err
	}

	cwd := checkCwd
	if cwd == "" {
		if cwd, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	toolInput, err := json.Marshal(domain.BashToolInput{Command: checkCommand})
	if err != nil {
		return fmt.Errorf("failed to marshal tool input: %w", err)
	}
	payload, err := json.Marshal(domain.PreToolUseInput{
		HookEventBase: domain.HookEventBase{Cwd: cwd, HookEventName: "PreToolUse"},
		ToolName:      checkTool,
		ToolInput:     toolInput,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	log := logger.New(env.LogFile, env.Debug())
	checker := gate.NewChecker(env.Gate(), gate.WithLogger(log))
	decision := checker.Evaluate(cmd.Context(), payload)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Outcome: %s\n", decision.Outcome)
	fmt.Fprintf(out, "Reason:  %s\n", decision.Reason)
	fmt.Fprintf(out, "Skill:   %s\n", checker.SkillPath(cwd))
	for _, msg := range shell.CommitMessages(checkCommand) {
		fmt.Fprintf(out, "Message: %q\n", msg)
	}

	writeDecision(cmd.ErrOrStderr(), decision)
	return exitFor(decision)
}
