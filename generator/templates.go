package generator

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.md
var templateFS embed.FS

// Templates holds the static prompt blocks. It is built once and only read afterwards.
type Templates struct {
	system   string
	contact  string
	examples map[string]string
}

var defaultTemplates = mustLoadTemplates()

// DefaultTemplates returns the embedded template set.
func DefaultTemplates() *Templates { return defaultTemplates }

func mustLoadTemplates() *Templates {
	t, err := loadTemplates()
	if err != nil {
		panic(err)
	}
	return t
}

func loadTemplates() (*Templates, error) {
	read := func(name string) (string, error) {
		b, err := templateFS.ReadFile("templates/" + name)
		if err != nil {
			return "", fmt.Errorf("read template %s: %w", name, err)
		}
		return string(b), nil
	}

	system, err := read("system.md")
	if err != nil {
		return nil, err
	}
	contact, err := read("contact.md")
	if err != nil {
		return nil, err
	}
	examples := make(map[string]string, len(lengthConfigs))
	for key := range lengthConfigs {
		ex, err := read("example_" + key + ".md")
		if err != nil {
			return nil, err
		}
		examples[key] = strings.TrimSpace(ex)
	}
	return &Templates{
		system:   strings.TrimSpace(system),
		contact:  contact,
		examples: examples,
	}, nil
}

// System is the base persona block.
func (t *Templates) System() string { return t.system }

// Contact is the footer appended verbatim to every generated post.
func (t *Templates) Contact() string { return t.contact }

// Example returns the style exemplar for a length tier, falling back to the default tier.
func (t *Templates) Example(lengthKey string) string {
	if ex, ok := t.examples[lengthKey]; ok {
		return ex
	}
	return t.examples[DefaultLength]
}
