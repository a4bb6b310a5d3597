package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/podsum/internal/generator"
)

const systemPrompt = `You are a podcast summarization expert. Given a podcast transcript, create a well-structured summary that captures the key information.

Your summary should include:
1. **Title & Overview** - A brief description of what the podcast is about
2. **Key Topics** - Main subjects discussed (bulleted list)
3. **Main Takeaways** - The most important insights and conclusions
4. **Notable Quotes** - Any memorable or impactful statements (if present)
5. **Summary** - A 2-3 paragraph executive summary

Be concise but comprehensive. Focus on actionable insights and key information.`

const userPromptTemplate = `Please summarize the following podcast transcript:

Source URL: %s

Transcript:
%s`

// buildPrompt assembles the request for one transcript. The transcript is
// sent whole; a context window overflow is reported by the provider.
func buildPrompt(sourceURL, transcriptText string) generator.Prompt {
	return generator.Prompt{
		System: systemPrompt,
		User:   fmt.Sprintf(userPromptTemplate, sourceURL, transcriptText),
	}
}
