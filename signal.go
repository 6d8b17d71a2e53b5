package scout

// PageSignal is the raw input for one page evaluation: the visible text
// and the link inventory of an already-rendered profile page. It is
// constructed fresh per call and never retained by the engine.
type PageSignal struct {
	// Text is the page's visible textual content, used for email and
	// keyword search.
	Text string

	// AnchorLinks holds URL strings from generic hyperlink elements,
	// in document order.
	AnchorLinks []string

	// PlatformLinks holds URL strings from known profile-specific UI
	// regions (link lists, channel header links). These are treated as
	// higher-confidence signals but classified identically.
	PlatformLinks []string

	// StructuredData holds the raw text of embedded structured-data
	// annotation blocks (JSON-LD). Each block is parsed independently
	// for a sameAs-style property; a malformed block is skipped.
	StructuredData []string

	// ButtonCaptions holds the captions of interactive elements
	// (buttons, labeled anchors), used by the business-contactability
	// heuristic.
	ButtonCaptions []string
}

// ClassifiedResult is the engine's output: the structured, deduplicated
// contact summary for one page. It is freshly allocated per call; the
// engine makes no aliasing guarantee across invocations, so callers
// must copy before mutating if they retain it.
type ClassifiedResult struct {
	// Emails holds lower-cased email addresses found in the page text,
	// deduplicated, in order of first appearance.
	Emails []string `json:"emails"`

	// Social maps each recognized platform to the first qualifying URL
	// encountered for it. Later URLs of the same platform are dropped.
	Social map[Platform]string `json:"social"`

	// Websites holds URLs whose host is neither a recognized platform
	// nor a host-site, deduplicated, in harvested order.
	Websites []string `json:"websites"`

	// OtherLinks holds harvested strings that are not absolute web
	// URLs (relative hrefs, mailto:, malformed values), deduplicated,
	// in harvested order.
	OtherLinks []string `json:"otherLinks"`

	// HasBusinessInquiry reports whether any business-contact
	// heuristic fired. It is advisory, not a guarantee of an actual
	// business contact path.
	HasBusinessInquiry bool `json:"hasBusinessInquiry"`

	// TotalLinksFound is the size of the merged, deduplicated link set.
	TotalLinksFound int `json:"totalLinksFound"`

	// SocialLinksFound is the number of platforms present in Social.
	SocialLinksFound int `json:"socialLinksFound"`
}

// SignalCollector builds a PageSignal from rendered HTML.
// Implementations hide DOM traversal and structured-data discovery.
type SignalCollector interface {
	Collect(html string) (*PageSignal, error)
}
