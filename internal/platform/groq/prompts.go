package groq

import "fmt"

// systemPrompt frames every request; the per-step prompts carry the
// actual instructions.
const systemPrompt = "You are an expert blog content writer. Follow the instructions exactly and return only the requested text, no extra commentary."

// titlePrompt asks for a bare title. Keeping it under 60 characters is a
// soft SEO constraint the model mostly honors.
func titlePrompt(topic string) string {
	return fmt.Sprintf(`Generate ONLY a creative and SEO-friendly title for a blog post about: %s

Requirements:
- Return only the title text, no additional formatting
- Make it engaging and clickable
- Keep it under 60 characters`, topic)
}

// contentPrompt asks for the markdown body, without repeating the title.
func contentPrompt(topic, title, language string) string {
	return fmt.Sprintf(`Write a compelling blog post about: %s
The post is titled: %s

Requirements:
- Write in %s
- Use proper Markdown formatting with headers (##, ###), bullet points, and emphasis
- Open with an introduction that hooks the reader
- Structure the content with clear sections and subheadings
- Include practical examples or tips where relevant
- End with a thought-provoking conclusion
- Do NOT include the title - only the content`, topic, title, language)
}

// translatePrompt asks for a faithful translation preserving markdown.
func translatePrompt(text, language string) string {
	return fmt.Sprintf(`Translate the following blog text into %s.

Requirements:
- Maintain the original tone, style, and formatting
- Adapt cultural references and idioms appropriately
- Preserve all Markdown formatting
- Return only the translated text

TEXT:
%s`, language, text)
}
