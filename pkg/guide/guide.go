// Package guide holds the long-form documentation shown by `milton guide`.
package guide

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/milton/pkg/errors"
)

// DefaultTopic is shown when no topic is named.
const DefaultTopic = "workflow"

//go:embed topics/*.md
var topicFS embed.FS

// Topics returns the available topic names, sorted.
func Topics() []string {
	entries, err := topicFS.ReadDir("topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Get returns the raw markdown of topic.
func Get(topic string) (string, error) {
	if topic == "" {
		topic = DefaultTopic
	}
	data, err := topicFS.ReadFile(path.Join("topics", topic+".md"))
	if err != nil {
		return "", errors.Newf(errors.ErrNotFound, "no guide topic %q (available: %s)",
			topic, strings.Join(Topics(), ", ")).WithDetail("topic", topic)
	}
	return string(data), nil
}

// Render returns topic formatted by r.
func Render(topic string, r Renderer) (string, error) {
	content, err := Get(topic)
	if err != nil {
		return "", err
	}
	if r == nil {
		r = PlainRenderer{}
	}
	return r.Render(content), nil
}

// Index lists the topics as markdown.
func Index() string {
	var b strings.Builder
	b.WriteString("# Guide topics\n\n")
	for _, name := range Topics() {
		fmt.Fprintf(&b, "- `%s`\n", name)
	}
	return b.String()
}
