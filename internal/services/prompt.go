package services

// Instruction is prepended to every user text sent to the provider.
const Instruction = "Summarize the following legal text in very simple and clear English. " +
	"Keep the meaning accurate. Avoid legal jargon. Make it easy to understand for someone without legal knowledge."

// BuildPrompt returns the single user message sent to the completion API.
// userText is embedded as-is.
func BuildPrompt(userText string) string {
	return Instruction + "\n\n" + "TEXT:\n" + userText
}
