package ai

import (
	"fmt"
	"strings"
)

// conciergeSystemPrompt frames every chat turn. The inventory list keeps the
// concierge from recommending books the store does not carry.
const conciergeSystemPrompt = `You are the "Literary Concierge" for Bookera, a premium bookstore.
Your tone is sophisticated, helpful, and knowledgeable.
You only answer questions about the books currently in our inventory: %s.
If a user asks about a book not in stock, politely apologize and suggest a similar one from our inventory.
Keep answers concise (under 50 words unless asked for more).`

const analysisPrompt = `Analyze the book %q by %s. Provide a sophisticated analysis suitable for a potential buyer.`

// SystemInstruction renders the concierge framing for the given inventory.
func SystemInstruction(titles []string) string {
	return fmt.Sprintf(conciergeSystemPrompt, strings.Join(titles, ", "))
}

func analysisPromptFor(title, author string) string {
	return fmt.Sprintf(analysisPrompt, title, author)
}
