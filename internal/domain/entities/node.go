package entities

// TextNode is a document node whose textual content can be replaced.
// Implementations exist for tag (element) nodes and plain text nodes; after
// SetText both must contain exactly the given text and nothing else.
type TextNode interface {
	SetText(text string)

	// OwnerDocument returns the document the node is attached to, or nil when
	// the node has been detached.
	OwnerDocument() Document

	// Location returns where the node sits in its source document. The boolean is
	// false when the node has no concrete location (e.g. it is detached).
	Location() (Location, bool)
}

// ElementNode is an element of a project document.
type ElementNode interface {
	TextNode

	Name() string
	Text() string

	// FirstChild returns the first direct child element with the given name.
	FirstChild(name string) (ElementNode, bool)

	// CreateChild creates a detached element owned by the same document. It is
	// attached with AppendChild.
	CreateChild(name string) ElementNode

	// AppendChild adds child as the last element child of this element.
	AppendChild(child ElementNode)
}

// Document is a parsed project descriptor that can be mutated in place.
type Document interface {
	// RootElement returns the document element, if any.
	RootElement() (ElementNode, bool)
}

// Location identifies a position inside a project document.
type Location struct {
	Path   string // element path, e.g. /project/dependencies/dependency/version
	Line   int    // 1-based, 0 when unknown
	Column int    // 1-based, 0 when unknown
}
