package summarizer

const promptTemplate = "Please provide a concise and relevant summary of the following text, focusing on key points and omitting any unnecessary details: "

// BuildPrompt embeds transcript verbatim into the fixed summary prompt.
func BuildPrompt(transcript string) string {
	return promptTemplate + transcript
}
