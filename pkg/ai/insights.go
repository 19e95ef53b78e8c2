package ai

import (
	"context"
	"encoding/json"
	"log"

	"github.com/openai/openai-go/v2"

	"github.com/bookera/storefront-api/pkg/models"
)

// insightsSchema constrains the analysis response to the shape the product
// detail page renders.
var insightsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"summary": map[string]any{
			"type":        "string",
			"description": "A concise one-sentence summary of the book.",
		},
		"keyTakeaways": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "3 distinct key takeaways or lessons.",
		},
		"famousQuote": map[string]any{
			"type":        "string",
			"description": "A famous or impactful quote from the book.",
		},
		"targetAudience": map[string]any{
			"type":        "string",
			"description": "Who this book is best for (e.g., Entrepreneurs, Students).",
		},
	},
	"required":             []string{"summary", "keyTakeaways", "famousQuote", "targetAudience"},
	"additionalProperties": false,
}

// BookInsights requests a one-shot structured analysis of a title. Any
// transport or parse failure yields a nil result; the caller renders an
// "unavailable" state instead of retrying.
func BookInsights(ctx context.Context, title, author string) *models.Insights {
	text, err := generateCompletion(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(analysisPromptFor(title, author)),
					},
				},
			},
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "book_analysis",
					Schema: insightsSchema,
					Strict: openai.Bool(true),
				},
			},
		},
		MaxTokens:   openai.Int(1500),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		log.Printf("AI analysis error for %q: %v", title, err)
		return nil
	}

	insights, err := parseInsights(text)
	if err != nil {
		log.Printf("AI analysis parse error for %q: %v", title, err)
		return nil
	}
	return insights
}

func parseInsights(text string) (*models.Insights, error) {
	var insights models.Insights
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}
