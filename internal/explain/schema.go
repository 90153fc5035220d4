package explain

import (
	"fmt"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/linxi/wordchamp/internal/llm"
)

// ExplanationSchema defines the JSON schema for word explanation cards.
var ExplanationSchema = &llm.Schema{
	Name:        "word-explanation",
	Description: "A playful explanation card for one English word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"meaning": map[string]any{
				"type":        "string",
				"description": "Simple Chinese explanation of the word's meaning (1-2 sentences)",
			},
			"funnySentence": map[string]any{
				"type":        "string",
				"description": "A funny English example sentence with Chinese translation",
			},
			"story": map[string]any{
				"type":        "string",
				"description": "A tiny story in Chinese featuring the word (2-3 sentences)",
			},
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "A memory trick in Chinese for remembering the spelling",
			},
		},
		"required":             []any{"meaning", "funnySentence", "story", "mnemonic"},
		"additionalProperties": false,
	},
}

const systemPrompt = `你是一位风趣的小学英语老师。孩子答错单词后，你用生动有趣的方式帮他们记住它。
语言要简单、活泼，适合小学生阅读。解释用中文，例句用英文并附中文翻译。`

func userMessage(word catalog.WordEntry) string {
	return fmt.Sprintf(
		"请针对小学%d年级的孩子解释单词 %q（中文意思：%s，音标：%s）。给出含义讲解、一个搞笑例句、一个小故事和一个拼写记忆技巧。",
		word.Grade, word.English, word.Translation, word.Phonetic)
}
