package entities

const (
	// ExtractFixLabel is the human-readable name of the extract fix.
	ExtractFixLabel = "Extract to properties"

	propertiesElement = "properties"
)

// FixOutcome is the state of a fix.
type FixOutcome string

const (
	// FixOffered means the fix has not been invoked yet.
	FixOffered FixOutcome = "offered"
	// FixApplied means the version was rewritten and the property was added.
	FixApplied FixOutcome = "applied"
	// FixPartiallyApplied means the version was rewritten but the document has
	// no root element or no <properties> block, so no property was added. The
	// rewrite is kept.
	FixPartiallyApplied FixOutcome = "partially-applied"
)

// ExtractPropertyFix moves a literal dependency version into a property and
// replaces the version with a reference to it. A fix is bound to the version
// node captured when the diagnostic was created and can be applied once.
type ExtractPropertyFix struct {
	PropertyName    string
	Expression      string
	ResolvedVersion Value

	versionNode TextNode
	outcome     FixOutcome
}

// NewExtractPropertyFix creates a fix for the given version node.
func NewExtractPropertyFix(artifactID string, resolvedVersion Value, versionNode TextNode) *ExtractPropertyFix {
	name := PropertyName(artifactID)
	return &ExtractPropertyFix{
		PropertyName:    name,
		Expression:      PlaceholderExpression(name),
		ResolvedVersion: resolvedVersion,
		versionNode:     versionNode,
		outcome:         FixOffered,
	}
}

// Label returns the fix name shown to users.
func (it *ExtractPropertyFix) Label() string {
	return ExtractFixLabel
}

// Outcome returns the current state of the fix.
func (it *ExtractPropertyFix) Outcome() FixOutcome {
	return it.outcome
}

// Apply rewrites the version node and appends the property. Calling Apply
// again returns the first outcome without touching the document.
func (it *ExtractPropertyFix) Apply() FixOutcome {
	if it.outcome != FixOffered {
		return it.outcome
	}

	it.versionNode.SetText(it.Expression)
	it.outcome = FixPartiallyApplied

	doc := it.versionNode.OwnerDocument()
	if doc == nil {
		return it.outcome
	}
	root, ok := doc.RootElement()
	if !ok {
		return it.outcome
	}
	properties, ok := root.FirstChild(propertiesElement)
	if !ok {
		return it.outcome
	}

	property := properties.CreateChild(it.PropertyName)
	property.SetText(it.ResolvedVersion.String())
	properties.AppendChild(property)

	it.outcome = FixApplied
	return it.outcome
}
