package summarization

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-atollmap/atolls"
)

const maxRowsForBriefing = 40

// GenerateAtollBriefing asks OpenAI for a short narrative of one atoll's
// project table.
func GenerateAtollBriefing(ctx context.Context, summary atolls.Summary, client *openai.Client) (string, error) {
	if len(summary.Rows) == 0 {
		return "", fmt.Errorf("no islands found for atoll %s", summary.Atoll)
	}

	prompt := buildPrompt(summary)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes island infrastructure project tables concisely for a public dashboard.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   200,
			N:           1,
			Temperature: 0.4,
		},
	)

	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(summary atolls.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Atoll %s: %d islands, total population %d.\n\n",
		summary.Atoll, summary.IslandCount, summary.TotalPopulation)

	rows := summary.Rows
	if len(rows) > maxRowsForBriefing {
		rows = rows[:maxRowsForBriefing]
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: water=%s sewerage=%s harbour=%s desalination=%s proposed=%s ongoingHarbor=%s\n",
			row.Locality,
			orDash(row.Water), orDash(row.Sewerage), orDash(row.Harbour), orDash(row.Desalination),
			orDash(string(row.ProposedForFunding)), orDash(string(row.OngoingHarborProject)))
	}

	b.WriteString("\nWrite a concise 2-3 sentence briefing of the infrastructure situation in this atoll, highlighting completed work, work in progress, and islands proposed for funding.")
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
