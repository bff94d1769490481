package taskdoc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Meta is the YAML front matter of a task document.
type Meta struct {
	ID      string    `yaml:"id"`
	Title   string    `yaml:"title"`
	Preset  string    `yaml:"preset,omitempty"`
	Status  string    `yaml:"status"`
	Created time.Time `yaml:"created"`
	Updated time.Time `yaml:"updated"`
}

// Doc is a markdown task document: front matter plus body.
type Doc struct {
	Meta Meta
	Body string
}

// Format renders the document as markdown with YAML front matter.
func Format(doc Doc) ([]byte, error) {
	meta, err := yaml.Marshal(doc.Meta)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(meta)
	buf.WriteString("---\n\n")
	buf.WriteString(doc.Body)
	if !strings.HasSuffix(doc.Body, "\n") {
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// Parse decodes a document produced by Format.
func Parse(data []byte) (Doc, error) {
	parts := strings.SplitN(string(data), "---\n", 3)
	if len(parts) < 3 || strings.TrimSpace(parts[0]) != "" {
		return Doc{}, errors.New("malformed front matter")
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil {
		return Doc{}, fmt.Errorf("parse front matter: %w", err)
	}

	body := strings.TrimPrefix(parts[2], "\n")
	return Doc{Meta: meta, Body: body}, nil
}
