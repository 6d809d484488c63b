package model

// TagRule maps an HTML tag name to the Markdown prefix used when rendering
// the text of matching elements. An empty prefix renders the bare text.
type TagRule struct {
	// Tag is the HTML element name, e.g. "h1" or "p".
	Tag string `yaml:"tag"`

	// Prefix is the Markdown line prefix, e.g. "#" or "-".
	// An empty prefix means the element text is emitted as-is.
	Prefix string `yaml:"prefix"`
}

// DefaultTagRules returns the fixed tag extraction table in rendering order.
//
// Design decision: This is a function returning a fresh slice rather than a
// package-level variable because slices are mutable and the rendering order
// is a contract: title and h1 both map to a top-level heading, then h2, h3,
// paragraphs, and list items. Callers (and the config loader, which may
// override the table) must not be able to corrupt the default by accident.
func DefaultTagRules() []TagRule {
	return []TagRule{
		{Tag: "title", Prefix: "#"},
		{Tag: "h1", Prefix: "#"},
		{Tag: "h2", Prefix: "##"},
		{Tag: "h3", Prefix: "###"},
		{Tag: "p", Prefix: ""},
		{Tag: "li", Prefix: "-"},
	}
}

// TagNames returns the tag names of the rules in order.
// Useful for logging and for building goquery selectors.
func TagNames(rules []TagRule) []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Tag
	}
	return names
}
