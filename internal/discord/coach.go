package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/daanteeab/demacia/internal/riot"
)

func NewOpenAIClient(apiKey string, maxTokens int, temperature float64) *OpenAIClient {
	client := openai.NewClient(apiKey)
	return &OpenAIClient{
		client:      client,
		maxTokens:   maxTokens,
		temperature: float32(temperature),
	}
}

func (o *OpenAIClient) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT3Dot5Turbo,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   o.maxTokens,
			Temperature: o.temperature,
		},
	)

	if err != nil {
		return "", fmt.Errorf("ChatCompletion error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

// coachCommentary asks the LLM for short improvement tips based on the daily
// report. Returns an error when no OpenAI client is configured or the
// completion fails; callers treat that as missing decoration.
func (b *DiscordBot) coachCommentary(ctx context.Context, stats *riot.DailyStats) (string, error) {
	if b.OpenAI == nil {
		return "", fmt.Errorf("no OpenAI client configured")
	}
	if stats.NoGames {
		return "", nil
	}

	return b.OpenAI.GenerateResponse(ctx, buildCoachPrompt(stats))
}

// buildCoachPrompt compresses the report into a prompt small enough to keep
// token usage predictable.
func buildCoachPrompt(stats *riot.DailyStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a concise League of Legends coach. Today's ranked games for %s:\n", stats.DisplayName)
	fmt.Fprintf(&sb, "Solo/Duo %dW-%dL, Flex %dW-%dL, overall K/D/A %d/%d/%d (%s).\n",
		stats.Solo.Wins, stats.Solo.Losses, stats.Flex.Wins, stats.Flex.Losses,
		stats.TotalKills, stats.TotalDeaths, stats.TotalAssists, stats.OverallKDA)

	for _, match := range stats.Matches {
		result := "loss"
		if match.Win {
			result = "win"
		}
		fmt.Fprintf(&sb, "- %s (%s): %s, %d/%d/%d in %dmin\n",
			match.Champion, match.Queue, result,
			match.Kills, match.Deaths, match.Assists, match.DurationMinutes)
	}

	sb.WriteString("Give 2-3 short, specific improvement tips. No preamble.")
	return sb.String()
}
