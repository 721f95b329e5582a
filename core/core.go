package core

// Role identifies the author of a conversation turn.
type Role string

const (
	// RoleHuman marks a turn authored by the end user.
	RoleHuman Role = "human"
	// RoleAssistant marks a turn authored by the service (provider or tool).
	RoleAssistant Role = "assistant"
)

// Turn is one message within a session. Turns are immutable once appended;
// their order within a session is the exact arrival order of successful
// appends.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// HumanTurn is a convenience constructor for a user-authored turn.
func HumanTurn(content string) Turn { return Turn{Role: RoleHuman, Content: content} }

// AssistantTurn is a convenience constructor for a service-authored turn.
func AssistantTurn(content string) Turn { return Turn{Role: RoleAssistant, Content: content} }

// Prompt is the fully assembled input handed to a Provider: a fixed system
// preamble, the prior turn history in original order and the new human
// utterance last.
type Prompt struct {
	System  string
	History []Turn
	Input   string
}

// LastHumanInput returns the new utterance, falling back to the most recent
// human turn in the history when Input is empty.
func (p Prompt) LastHumanInput() string {
	if p.Input != "" {
		return p.Input
	}
	for i := len(p.History) - 1; i >= 0; i-- {
		if p.History[i].Role == RoleHuman {
			return p.History[i].Content
		}
	}
	return ""
}
