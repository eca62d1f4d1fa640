package llm

import "github.com/sashabaranov/go-openai"

// buildMessages assembles the system+user message pair; an empty system
// prompt is omitted.
func buildMessages(system, user string) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	return append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: user})
}
