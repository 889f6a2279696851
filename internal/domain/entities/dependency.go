package entities

import "strings"

// Value is a nullable text value read from a project document.
type Value struct {
	Text  string
	Valid bool // false when the value is absent (null)
}

// NewValue returns a present value.
func NewValue(text string) Value {
	return Value{Text: text, Valid: true}
}

// NullValue returns an absent value.
func NullValue() Value {
	return Value{}
}

// IsBlank reports whether the value is absent or contains only whitespace.
func (v Value) IsBlank() bool {
	return !v.Valid || strings.TrimSpace(v.Text) == ""
}

// String returns the text, or an empty string when the value is null.
func (v Value) String() string {
	if !v.Valid {
		return ""
	}
	return v.Text
}

// VersionField is the version part of a dependency declaration.
type VersionField struct {
	Resolved Value    // value after ${...} substitution
	Raw      Value    // text exactly as authored
	Node     TextNode // live node backing the field, nil without a source location
}

// Dependency is a read-only view of one <dependency> declaration captured at
// scan time. Views are invalidated by any edit of the underlying document.
type Dependency struct {
	Node       ElementNode // the declaration itself, used as its identity
	GroupID    Value       // resolved
	ArtifactID Value       // resolved
	Version    VersionField
	Managed    bool // declared under <dependencyManagement>
}

// Coordinates returns "groupId:artifactId" for display.
func (d Dependency) Coordinates() string {
	return d.GroupID.String() + ":" + d.ArtifactID.String()
}

// Property is one name/value entry of a project's <properties> block.
type Property struct {
	Name  string
	Value string
}

// ProjectModel is the parsed representation of a project descriptor.
type ProjectModel interface {
	Dependencies() []Dependency
	ManagedDependencies() []Dependency
	Properties() []Property
}

// ProjectDocument is a ProjectModel loaded from a file.
type ProjectDocument interface {
	ProjectModel
	Path() string
}
