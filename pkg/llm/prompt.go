package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a news editor. You write clear, neutral summaries of news coverage.

Rules:
1. Stick to the facts in the provided text: names, numbers, dates, places
2. No hype, no editorializing, no exclamation marks
3. Plain prose only, no markdown, no bullet lists unless asked
4. Never mention that you are summarizing or refer to "the article"`

const maxExcerptChars = 500

// SummaryInput is one article's text handed to the engine.
type SummaryInput struct {
	Title       string
	Content     string
	Description string
}

// Body picks the richest text available for the prompt.
func (in SummaryInput) Body() string {
	if in.Content != "" {
		return in.Content
	}
	if in.Description != "" {
		return in.Description
	}
	return "No content available."
}

// BuildArticlePrompt produces the single-article summarization prompt for the
// given length mode ("1-2 sentences" etc).
func BuildArticlePrompt(in SummaryInput, sentences string) string {
	return fmt.Sprintf("Summarize the following news article in %s.\n\nTitle: %s\n\n%s",
		sentences, in.Title, in.Body())
}

// BuildTopicPrompt embeds every excerpt labeled by index and asks for a
// single synthesized narrative across them.
func BuildTopicPrompt(topic string, articles []SummaryInput) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Below are %d recent news articles about %q.\n\n", len(articles), topic))
	for i, a := range articles {
		sb.WriteString(fmt.Sprintf("[%d] Title: %s\n", i+1, a.Title))
		sb.WriteString(fmt.Sprintf("    Excerpt: %s\n\n", truncate(a.Body(), maxExcerptChars)))
	}
	sb.WriteString("Write a comprehensive topic summary in organized prose: start with an overview, ")
	sb.WriteString("then cover the key developments, then note any differing viewpoints across the coverage.")
	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
