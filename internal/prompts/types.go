package prompts

// PromptID identifies a specific prompt template.
type PromptID string

// Prompt identifiers for all generation prompts in scribe.
const (
	// CommitSystem is the system prompt carrying the preset's rules and
	// behavioral instructions.
	CommitSystem PromptID = "commit_system"

	// CommitUser is the user prompt carrying the staged diff and the
	// caller's free-text intent.
	CommitUser PromptID = "commit_user"
)

// CommitSystemData contains input data for the commit system prompt.
type CommitSystemData struct {
	// StyleName is the resolved preset style.
	StyleName string
	// Instructions is the preset's natural-language guidance, included verbatim.
	Instructions string
	// SubjectMaxLength is the hard subject line limit.
	SubjectMaxLength int
	// BodyLineMaxLength is the body wrap limit.
	BodyLineMaxLength int
	// RequireBody demands a body paragraph.
	RequireBody bool
	// ForbidBody demands a subject-only message.
	ForbidBody bool
	// Types lists the allowed commit types (empty for untyped styles).
	Types []string
}

// CommitUserData contains input data for the commit user prompt.
type CommitUserData struct {
	// Intent is the caller's free-text description of the commit.
	Intent string
	// Diff is the full staged diff.
	Diff string
	// StyleName is the resolved preset style, repeated for the model.
	StyleName string
}
