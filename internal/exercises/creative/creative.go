// Package creative implements the content-generation exercise: stories,
// blog posts and product copy.
package creative

import (
	"context"
	"fmt"
	"strings"

	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/pkg/chat"
)

// lengthGuidelines maps story lengths to target word counts.
var lengthGuidelines = map[string]string{
	"short":  "200-400 words",
	"medium": "500-800 words",
	"long":   "1000+ words",
}

// Story generates a story in a genre. Unknown lengths fall back to a
// 300-500 word target.
func Story(ctx context.Context, client llm.Client, prompt, genre, length string) (string, error) {
	guideline, ok := lengthGuidelines[length]
	if !ok {
		guideline = "300-500 words"
	}
	return client.Chat(ctx, []chat.Message{
		chat.System(fmt.Sprintf("You are a creative writer specializing in %s stories. Write engaging, well-structured stories with compelling characters and vivid descriptions. Target length: %s.", genre, guideline)),
		chat.User(fmt.Sprintf("Write a %s story based on this prompt: %s", genre, prompt)),
	})
}

// BlogPost generates a post with a given tone for a given audience.
func BlogPost(ctx context.Context, client llm.Client, topic, tone, audience string) (string, error) {
	return client.Chat(ctx, []chat.Message{
		chat.System(fmt.Sprintf("You are a skilled content writer. Write engaging blog posts with a %s tone for %s audience. Include a compelling title, introduction, main points, and conclusion.", tone, audience)),
		chat.User("Write a blog post about: " + topic),
	})
}

// ProductDescription generates marketing copy from a feature list.
func ProductDescription(ctx context.Context, client llm.Client, name string, features []string, market string) (string, error) {
	var list strings.Builder
	for _, f := range features {
		list.WriteString("- " + f + "\n")
	}
	return client.Chat(ctx, []chat.Message{
		chat.System(fmt.Sprintf("You are a marketing copywriter. Create compelling product descriptions that highlight benefits and appeal to the %s market. Use persuasive language and focus on value.", market)),
		chat.User(fmt.Sprintf("Create a product description for '%s' with these features:\n%s", name, list.String())),
	})
}
