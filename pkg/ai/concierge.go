package ai

import (
	"context"
	"log"

	"github.com/openai/openai-go/v2"

	"github.com/bookera/storefront-api/pkg/catalog"
	"github.com/bookera/storefront-api/pkg/models"
)

// ApologyMessage is returned whenever the concierge cannot answer. The user
// retries by resending their message; the adapter never retries on its own.
const ApologyMessage = "My apologies, I am momentarily distracted. Please ask again."

// ChatWithConcierge forwards the full transcript plus the new message under
// the concierge framing and returns the model's reply text.
func ChatWithConcierge(ctx context.Context, history []models.ChatMessage, message string) string {
	messages := buildTranscript(history, message)

	reply, err := generateCompletion(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		MaxTokens:   openai.Int(1500),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		log.Printf("AI chat error: %v", err)
		return ApologyMessage
	}
	return reply
}

// buildTranscript maps the conversation onto chat-completion messages: the
// system framing first, then prior turns in order, then the new user message.
func buildTranscript(history []models.ChatMessage, message string) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)

	messages = append(messages, openai.ChatCompletionMessageParamUnion{
		OfSystem: &openai.ChatCompletionSystemMessageParam{
			Content: openai.ChatCompletionSystemMessageParamContentUnion{
				OfString: openai.String(SystemInstruction(catalog.Titles())),
			},
		},
	})

	for _, turn := range history {
		if turn.Role == "user" {
			messages = append(messages, openai.ChatCompletionMessageParamUnion{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(turn.Text),
					},
				},
			})
			continue
		}
		messages = append(messages, openai.ChatCompletionMessageParamUnion{
			OfAssistant: &openai.ChatCompletionAssistantMessageParam{
				Content: openai.ChatCompletionAssistantMessageParamContentUnion{
					OfString: openai.String(turn.Text),
				},
			},
		})
	}

	messages = append(messages, openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfString: openai.String(message),
			},
		},
	})

	return messages
}
