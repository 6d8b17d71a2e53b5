// Package trafilatura implements description extraction from profile
// pages using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/mstanek/scout"
	"golang.org/x/net/html"
)

// Ensure Extractor implements scout.Extractor at compile time.
var _ scout.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the descriptive content out of
// a profile page, dropping player chrome and recommendations.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main descriptive content.
func (e *Extractor) Extract(rawHTML string) (*scout.ExtractResult, error) {
	if rawHTML == "" {
		return nil, scout.Errorf(scout.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &scout.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
