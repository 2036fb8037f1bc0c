package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// ParseLesson splits a markdown file into YAML frontmatter and body.
// The markdown body becomes the lesson overview.
func ParseLesson(content string) (*Lesson, error) {
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, frontmatterDelimiter) {
		// No frontmatter: treat entire content as overview
		return &Lesson{Overview: content}, nil
	}

	// Find the closing delimiter
	rest := content[len(frontmatterDelimiter):]
	idx := strings.Index(rest, "\n"+frontmatterDelimiter)
	if idx == -1 {
		return nil, fmt.Errorf("unclosed frontmatter delimiter")
	}

	yamlContent := rest[:idx]
	body := rest[idx+len("\n"+frontmatterDelimiter):]
	body = strings.TrimLeft(body, "\n")

	var lesson Lesson
	if err := yaml.Unmarshal([]byte(yamlContent), &lesson); err != nil {
		return nil, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}

	lesson.Overview = strings.TrimRight(body, "\n")
	return &lesson, nil
}

// SerializeLesson renders a Lesson back to markdown with YAML frontmatter.
func SerializeLesson(l *Lesson) (string, error) {
	yamlBytes, err := yaml.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("serializing frontmatter YAML: %w", err)
	}

	var b strings.Builder
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(string(yamlBytes), "\n"))
	b.WriteString("\n")
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	if l.Overview != "" {
		b.WriteString("\n")
		b.WriteString(l.Overview)
		if !strings.HasSuffix(l.Overview, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

// Markdown renders the whole lesson as one markdown document, suitable for
// glamour.
func (l *Lesson) Markdown() string {
	var b strings.Builder
	title := l.Title
	if title == "" {
		title = l.Body
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if l.Overview != "" {
		b.WriteString(l.Overview)
		b.WriteString("\n\n")
	}

	list := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", heading)
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")
	}
	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "**%s:** %s\n\n", label, value)
		}
	}

	list("Key facts", l.KeyFacts)
	field("Composition", l.Composition)
	field("Atmosphere", l.Atmosphere)
	field("Moons", l.Moons)
	field("Compared to Earth", l.CompareToEarth)
	list("Fun facts", l.FunFacts)
	list("Exploration", l.Exploration)
	list("Did you know?", l.DidYouKnow)
	list("Mission tips", l.MissionTips)

	return strings.TrimRight(b.String(), "\n") + "\n"
}
