package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned for payloads that are valid JSON but not an object.
var ErrNotObject = errors.New("hook event is not a JSON object")

// HookEventBase contains fields common to all hook events from Claude Code.
type HookEventBase struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	Cwd            string `json:"cwd"`
	PermissionMode string `json:"permission_mode"`
	HookEventName  string `json:"hook_event_name"`
}

// PreToolUseInput is sent before a tool is executed.
// The hook may block the tool call by exiting with code 2.
type PreToolUseInput struct {
	HookEventBase
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
	ToolUseID string          `json:"tool_use_id"`
}

// BashToolInput is the tool_input payload of the Bash tool.
type BashToolInput struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// Command returns the shell command carried by tool_input, or an empty
// string when tool_input is missing or has no string command.
func (e *PreToolUseInput) Command() string {
	if len(e.ToolInput) == 0 {
		return ""
	}
	var in BashToolInput
	if err := json.Unmarshal(e.ToolInput, &in); err != nil {
		return ""
	}
	return in.Command
}

// ParsePreToolUse parses raw hook JSON into a PreToolUseInput.
// hook_event_name is not required; hosts that invoke the hook for a single
// event type often omit it. A payload such as null that carries no object
// is rejected.
func ParsePreToolUse(data []byte) (*PreToolUseInput, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] != '{' {
		if json.Valid(trimmed) {
			return nil, fmt.Errorf("failed to parse hook event: %w", ErrNotObject)
		}
	}

	var event PreToolUseInput
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to parse hook event: %w", err)
	}
	return &event, nil
}
