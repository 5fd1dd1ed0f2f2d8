package domain

import "fmt"

// DefaultSystemPrompt is the instruction the chat model receives before every
// refinement request. Overridable via chat.system_prompt in the config.
const DefaultSystemPrompt = "You are a prompt engineer for a text-to-image model. " +
	"You turn short image requests into vivid, concrete scene descriptions. " +
	"Keep the subject of the request intact and never refuse to elaborate."

const (
	promptSetup       = "Upgrade the following image request into a detailed scene description:"
	lengthRestriction = "Reply with the description only, in at most 900 characters."
)

// RefinementRequest wraps a raw image prompt in the refinement template sent to
// the chat model. The input is embedded verbatim, quoted; an empty prompt is
// passed through unchecked.
func RefinementRequest(prompt string) string {
	return fmt.Sprintf("%s %q %s", promptSetup, prompt, lengthRestriction)
}
