package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/commitgate/internal/adapters/logger"
	"github.com/emiliopalmerini/commitgate/internal/adapters/otel"
	"github.com/emiliopalmerini/commitgate/internal/domain"
	"github.com/emiliopalmerini/commitgate/internal/gate"
	"github.com/emiliopalmerini/commitgate/internal/infrastructure/config"
	"github.com/emiliopalmerini/commitgate/internal/ports"
)

const metricsFlushTimeout = 2 * time.Second

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Handle a Claude Code PreToolUse event",
	Long: `Reads a PreToolUse event JSON from stdin and blocks git commits that lack
conversation context. Exits 2 to block, 0 otherwise.

Configure it as a PreToolUse hook for the Bash tool:

  {
    "hooks": {
      "PreToolUse": [{
        "matcher": "Bash",
        "hooks": [{"type": "command", "command": "commitgate hook"}]
      }]
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runHook,
}

func runHook(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	env, err := config.LoadHook()
	if err != nil {
		writeDecision(cmd.ErrOrStderr(), domain.AllowWithDiagnostic(fmt.Sprintf("Hook error (non-blocking): %v\n", err)))
		return nil
	}

	log := logger.New(env.LogFile, env.Debug()).With("invocation", uuid.NewString())
	checker := gate.NewChecker(env.Gate(), gate.WithLogger(log))

	exporter := newMetricsExporter(ctx, log)
	defer closeMetricsExporter(ctx, exporter, log)

	start := time.Now()
	decision := checker.Run(ctx, cmd.InOrStdin())

	if err := exporter.RecordDecision(ctx, &ports.DecisionMetrics{
		Outcome:  decision.Outcome.String(),
		Reason:   decision.Reason,
		ToolName: decision.ToolName,
		Duration: time.Since(start),
	}); err != nil {
		log.WarnContext(ctx, "Failed to record decision", "error", err)
	}

	writeDecision(cmd.ErrOrStderr(), decision)
	return exitFor(decision)
}

// writeDecision writes the decision's message to w. Block messages get a
// red header only when w itself is a terminal.
func writeDecision(w io.Writer, d domain.Decision) {
	if d.Message == "" {
		return
	}
	if d.Outcome == domain.OutcomeBlock {
		c := color.New(color.FgRed, color.Bold)
		if isTerminal(w) && os.Getenv("NO_COLOR") == "" {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		c.Fprintln(w, d.Message)
		return
	}
	fmt.Fprint(w, d.Message)
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newMetricsExporter returns the OTEL exporter when configured, otherwise a
// no-op exporter. A malformed telemetry setting only disables metrics.
func newMetricsExporter(ctx context.Context, log *slog.Logger) ports.MetricsExporter {
	env, err := config.LoadTelemetry()
	if err != nil {
		log.WarnContext(ctx, "Metrics export disabled", "error", err)
		return otel.NewNoOpExporter()
	}
	cfg := otel.ConfigFromEnv(env)
	if !cfg.Enabled {
		return otel.NewNoOpExporter()
	}
	exp, err := otel.NewExporter(ctx, cfg)
	if err != nil {
		log.WarnContext(ctx, "Metrics export disabled", "error", err)
		return otel.NewNoOpExporter()
	}
	return exp
}

func closeMetricsExporter(ctx context.Context, exp ports.MetricsExporter, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, metricsFlushTimeout)
	defer cancel()
	if err := exp.Close(ctx); err != nil {
		log.WarnContext(ctx, "Failed to flush metrics", "error", err)
	}
}
