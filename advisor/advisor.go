// Package advisor produces assistant replies for the farm chat:
// intent shortcuts for trivial messages, and Gemini-backed answers
// grounded in a compact farm-context document for everything else.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/TheKalyaniMohite/TableGrapeAgent/config"
)

const SYSTEM_INSTRUCTION = `
You are TableGrape Agent, a friendly and helpful assistant for table grape farmers. Be warm, conversational, and human-like.

STYLE RULES:
- Keep answers 2-6 lines by default (unless user asks for detail)
- Use simple, farmer-friendly words. Avoid stiff phrases like "You are in..." repeatedly
- Write short sentences. Avoid long paragraphs
- Be conversational and natural, like talking to a friend
- Only reference farm context when it's directly relevant to the question
- If something is unclear or a next step is needed, ask one short follow-up question at the end
- If the user message is vague (e.g., "okay", "hmm", "what's new"), respond with a short clarifying question + 2 example options

FORMATTING:
- NO markdown (no **, no markdown bullets, no code blocks)
- Use plain text only
- For lists, use simple lines starting with a bullet character only

SAFETY RULES:
- DO NOT mention specific chemical names, doses, or mixing instructions
- DO NOT provide pesticide recommendations
- DO provide general advice like: "consult local agri officer", "monitor for issues", "improve airflow", "avoid irrigating before heavy rain"
`

// languageNames maps supported language codes to the name used in the
// prompt. Unknown codes fall back to English.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"es": "Spanish",
	"mr": "Marathi",
}

// contextKeywords gates whether the farm context is attached to the
// prompt. Small talk should not drag the whole context along.
var contextKeywords = []string{
	"stage", "status", "weather", "forecast", "irrigation", "spray",
	"issue", "problem", "mildew", "sunburn", "crack", "pest", "brix",
	"harvest", "variety", "block", "farm",
}

func needsContext(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range contextKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Reply asks Gemini for an answer to the user's message. farmCtx may
// be nil when no context is available; it is attached to the prompt
// only when the question appears to need it.
func Reply(ctx context.Context, userMessage string, farmCtx *FarmContext, lang string) (string, error) {
	language, ok := languageNames[lang]
	if !ok {
		language = "English"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.GetConfig().GeminiApiKey,
	})
	if err != nil {
		return "", err
	}

	var prompt string
	if farmCtx != nil && needsContext(userMessage) {
		contextJSON, err := json.MarshalIndent(farmCtx, "", "  ")
		if err != nil {
			return "", err
		}
		prompt = fmt.Sprintf("Farm context (use only if relevant):\n%s\n\nUser question: %s\n\nAnswer naturally and concisely in %s.", contextJSON, userMessage, language)
	} else {
		prompt = fmt.Sprintf("User question: %s\n\nAnswer naturally and concisely in %s.", userMessage, language)
	}

	instruction := SYSTEM_INSTRUCTION + fmt.Sprintf("\nRespond in %s language. Keep it friendly, concise, and practical.\n", language)

	result, err := client.Models.GenerateContent(
		ctx,
		config.GetConfig().GeminiModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.Text()), nil
}
