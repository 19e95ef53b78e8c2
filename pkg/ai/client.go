package ai

import (
	"context"
	"log"
	"os"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

var client *openai.Client
var isInitialized bool

// InitService initializes the hosted text-generation client from environment
// variables. A missing credential disables the adapter rather than failing
// startup; callers render fallbacks instead.
func InitService() {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("AI concierge disabled - OPENAI_API_KEY not provided")
		isInitialized = false
		return
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	clientValue := openai.NewClient(opts...)
	client = &clientValue

	isInitialized = true
	log.Println("AI concierge initialized")
}

// IsEnabled returns whether the adapter is ready to serve requests.
func IsEnabled() bool {
	return isInitialized && client != nil
}

func modelName() openai.ChatModel {
	if name := os.Getenv("OPENAI_MODEL"); name != "" {
		return openai.ChatModel(name)
	}
	return openai.ChatModelGPT4oMini
}

// generateCompletion runs a single chat completion and returns the reply
// text. Every call is attempted exactly once; there is no retry policy.
func generateCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	if !IsEnabled() {
		return "", &AIError{Message: "AI service is not enabled"}
	}

	params.Model = modelName()

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.Printf("AI API Error: %v", err)
		return "", &AIError{Message: "Failed to generate AI response", Cause: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &AIError{Message: "AI returned empty response"}
	}

	return resp.Choices[0].Message.Content, nil
}

// AIError represents an AI service error
type AIError struct {
	Message string
	Cause   error
}

func (e *AIError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}
