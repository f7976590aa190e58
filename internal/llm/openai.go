package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"impactcast/internal/logger"
	"impactcast/internal/models"
)

const systemPrompt = "You are a planetary-defense science communicator. Given numeric " +
	"estimates from a simplified asteroid impact model, write two short paragraphs of " +
	"plain-language commentary putting the numbers in context. Do not invent numbers " +
	"that are not in the data, and note that the estimates are rough heuristics."

// OpenAIClient generates optional plain-language commentary for reports.
type OpenAIClient struct {
	client *openai.Client
	model  string
	log    *logger.Logger
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    logger.GetGlobalLogger().WithComponent("llm"),
	}
}

// GenerateCommentary asks the model for commentary on one simulation
// response. The deterministic template narrative never goes through here;
// commentary is an additive report section only.
func (c *OpenAIClient) GenerateCommentary(ctx context.Context, resp *models.SimulationResponse) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	prompt, err := buildPrompt(resp)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	completion, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   1024,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	commentary := completion.Choices[0].Message.Content
	c.log.Debugf("Generated commentary with %d characters", len(commentary))

	return commentary, nil
}

// BuildPrompt constructs the user prompt - public for testing
func (c *OpenAIClient) BuildPrompt(resp *models.SimulationResponse) (string, error) {
	return buildPrompt(resp)
}

func buildPrompt(resp *models.SimulationResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("simulation response is required")
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal simulation response: %w", err)
	}

	return fmt.Sprintf(`## Asteroid impact simulation results

The following JSON holds the normalized inputs and derived estimates of one
impact simulation (mass, kinetic energy, TNT equivalent, crater diameter,
seismic magnitude equivalent, tsunami height and radius):

`+"```json\n%s\n```"+`

Write the commentary described in your instructions.`, string(data)), nil
}
