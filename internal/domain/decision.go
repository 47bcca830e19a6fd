package domain

// Outcome is the result class of a gate decision.
type Outcome int

const (
	OutcomeAllow Outcome = iota
	OutcomeAllowWithDiagnostic
	OutcomeBlock
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAllow:
		return "allow"
	case OutcomeAllowWithDiagnostic:
		return "allow_with_diagnostic"
	case OutcomeBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Reasons recorded alongside a Decision.
const (
	ReasonDisabled          = "disabled"
	ReasonNotGitCommit      = "not_git_commit"
	ReasonSkillNotInstalled = "skill_not_installed"
	ReasonContextPresent    = "context_present"
	ReasonMissingContext    = "missing_context"
	ReasonError             = "error"
)

// Exit codes understood by the hook host.
const (
	ExitAllow = 0
	ExitBlock = 2
)

// Decision is the verdict for a single hook invocation.
type Decision struct {
	Outcome  Outcome
	Reason   string
	// ToolName is the tool the event was about, when the event parsed.
	ToolName string
	// Message is written to stderr. Empty for a silent allow.
	Message  string
}

// Allow returns a silent allow recorded with reason.
func Allow(reason string) Decision {
	return Decision{Outcome: OutcomeAllow, Reason: reason}
}

// Block returns a block for a commit missing its conversation context.
func Block(message string) Decision {
	return Decision{Outcome: OutcomeBlock, Reason: ReasonMissingContext, Message: message}
}

// AllowWithDiagnostic returns an allow that reports an internal failure on stderr.
func AllowWithDiagnostic(message string) Decision {
	return Decision{Outcome: OutcomeAllowWithDiagnostic, Reason: ReasonError, Message: message}
}

// ExitCode maps the decision to the process exit code.
func (d Decision) ExitCode() int {
	if d.Outcome == OutcomeBlock {
		return ExitBlock
	}
	return ExitAllow
}
