// Package gate decides whether a git commit issued through the shell tool
// may proceed.
//
// Enforcement is opt-in: a commit is only inspected when the
// git-commit-conversation-context skill is installed, either under the
// plugin root or in the project's .claude directory. Every internal failure
// resolves to an allow so that a broken hook never blocks a legitimate
// command.
package gate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"syscall"

	"github.com/emiliopalmerini/commitgate/internal/domain"
	"github.com/emiliopalmerini/commitgate/internal/shell"
)

// Config is the environment-derived configuration of a Checker.
type Config struct {
	// Disabled bypasses every check without reading the event.
	Disabled bool
	// PluginRoot overrides where SKILL.md is looked up.
	PluginRoot string
}

// Checker evaluates PreToolUse events against the commit gate.
type Checker struct {
	cfg    Config
	logger *slog.Logger
	stat   func(string) (fs.FileInfo, error)
	getwd  func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the debug logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

// WithStat replaces os.Stat for the skill file existence check.
func WithStat(stat func(string) (fs.FileInfo, error)) Option {
	return func(c *Checker) { c.stat = stat }
}

// WithGetwd replaces os.Getwd, used when the event carries no cwd.
func WithGetwd(getwd func() (string, error)) Option {
	return func(c *Checker) { c.getwd = getwd }
}

// NewChecker creates a Checker for cfg.
func NewChecker(cfg Config, opts ...Option) *Checker {
	c := &Checker{
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
		stat:   os.Stat,
		getwd:  os.Getwd,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SkillPath returns the SKILL.md path checked for an event run in workingDirectory.
func (c *Checker) SkillPath(workingDirectory string) string {
	return SkillPath(c.cfg.PluginRoot, workingDirectory)
}

// Run reads the whole event from r and evaluates it. r is not touched when
// the checker is disabled.
func (c *Checker) Run(ctx context.Context, r io.Reader) domain.Decision {
	if c.cfg.Disabled {
		c.logger.DebugContext(ctx, "Hook disabled")
		return domain.Allow(domain.ReasonDisabled)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return c.fail(ctx, fmt.Errorf("failed to read stdin: %w", err))
	}
	return c.Evaluate(ctx, data)
}

// Evaluate decides on an already-read event payload.
func (c *Checker) Evaluate(ctx context.Context, data []byte) (decision domain.Decision) {
	if c.cfg.Disabled {
		return domain.Allow(domain.ReasonDisabled)
	}

	defer func() {
		if r := recover(); r != nil {
			decision = c.fail(ctx, fmt.Errorf("panic: %v", r))
		}
	}()

	decision, err := c.evaluate(ctx, data)
	if err != nil {
		return c.fail(ctx, err)
	}
	return decision
}

func (c *Checker) evaluate(ctx context.Context, data []byte) (domain.Decision, error) {
	event, err := domain.ParsePreToolUse(data)
	if err != nil {
		return domain.Decision{}, err
	}

	decision, err := c.decide(ctx, event)
	decision.ToolName = event.ToolName
	return decision, err
}

func (c *Checker) decide(ctx context.Context, event *domain.PreToolUseInput) (domain.Decision, error) {
	command := event.Command()
	if !IsGitCommit(event.ToolName, command) {
		c.logger.DebugContext(ctx, "Not a git commit command", "tool_name", event.ToolName)
		return domain.Allow(domain.ReasonNotGitCommit), nil
	}

	cwd := event.Cwd
	if cwd == "" {
		wd, err := c.getwd()
		if err != nil {
			return domain.Decision{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		cwd = wd
	}

	skillPath := c.SkillPath(cwd)
	installed, err := c.exists(skillPath)
	if err != nil {
		return domain.Decision{}, err
	}
	if !installed {
		c.logger.DebugContext(ctx, "Skill not installed, allowing commit", "skill_path", skillPath)
		return domain.Allow(domain.ReasonSkillNotInstalled), nil
	}

	if HasContextMarker(command) {
		c.logger.DebugContext(ctx, "Context marker found, allowing commit")
		return domain.Allow(domain.ReasonContextPresent), nil
	}

	c.logger.DebugContext(ctx, "Blocking commit - missing context marker",
		"skill_path", skillPath,
		"messages", shell.CommitMessages(command),
	)
	return domain.Block(BlockMessage), nil
}

func (c *Checker) exists(path string) (bool, error) {
	_, err := c.stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat skill file: %w", err)
}

func (c *Checker) fail(ctx context.Context, err error) domain.Decision {
	c.logger.ErrorContext(ctx, "Hook error", "error", err)
	return domain.AllowWithDiagnostic(fmt.Sprintf("Hook error (non-blocking): %v\n", err))
}
