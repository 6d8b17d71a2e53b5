package scout

// ExtractResult holds the extracted about/description content from a
// profile page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the description/about content as clean HTML.
	// Boilerplate (nav, player chrome, recommendations) has been removed.
	ContentHTML string
}

// Extractor extracts the main descriptive content from profile pages,
// removing boilerplate. The result feeds outreach-text generation.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
