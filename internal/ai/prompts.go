package ai

const oneWordPrompt = "Answer the following question with exactly one word, no additional text or explanations: "

// OneWordPrompt builds the user message sent for a question.
func OneWordPrompt(question string) string {
	return oneWordPrompt + question
}
