package llm

import "github.com/lumochat/lumo-api/internal/domain"

// BuildPrompt assembles the complete payload for a completion call: the
// persona prompt first, the stored history verbatim in append order, then
// the new user turn. No truncation or deduplication is applied.
func BuildPrompt(systemPrompt string, history []domain.Message, userContent string) []Message {
	prompt := make([]Message, 0, len(history)+2)

	prompt = append(prompt, Message{Role: string(domain.RoleSystem), Content: systemPrompt})

	for _, msg := range history {
		prompt = append(prompt, Message{Role: string(msg.Role), Content: msg.Content})
	}

	return append(prompt, Message{Role: string(domain.RoleUser), Content: userContent})
}
