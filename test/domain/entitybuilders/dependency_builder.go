//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/test/domain/entitydoubles"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
// Every built dependency gets its own declaration node and a locatable
// version node unless told otherwise.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	groupID     entities.Value
	artifactID  entities.Value
	rawVersion  entities.Value
	resolved    entities.Value
	versionNode entities.TextNode
	noNode      bool
	declaration entities.ElementNode
	managed     bool
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		groupID:     entities.NewValue("org.example"),
		artifactID:  entities.NewValue("core"),
		rawVersion:  entities.NewValue("1.2.3"),
		resolved:    entities.NewValue("1.2.3"),
	}
}

// WithGroupID sets the resolved group identifier.
func (b *DependencyBuilder) WithGroupID(groupID string) *DependencyBuilder {
	b.groupID = entities.NewValue(groupID)
	return b
}

// WithoutGroupID leaves the group identifier null.
func (b *DependencyBuilder) WithoutGroupID() *DependencyBuilder {
	b.groupID = entities.NullValue()
	return b
}

// WithArtifactID sets the resolved artifact identifier.
func (b *DependencyBuilder) WithArtifactID(artifactID string) *DependencyBuilder {
	b.artifactID = entities.NewValue(artifactID)
	return b
}

// WithoutArtifactID leaves the artifact identifier null.
func (b *DependencyBuilder) WithoutArtifactID() *DependencyBuilder {
	b.artifactID = entities.NullValue()
	return b
}

// WithVersion sets both the raw and the resolved version.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.rawVersion = entities.NewValue(version)
	b.resolved = entities.NewValue(version)
	return b
}

// WithRawVersion sets the authored version text only.
func (b *DependencyBuilder) WithRawVersion(raw string) *DependencyBuilder {
	b.rawVersion = entities.NewValue(raw)
	return b
}

// WithoutRawVersion leaves the authored version text null.
func (b *DependencyBuilder) WithoutRawVersion() *DependencyBuilder {
	b.rawVersion = entities.NullValue()
	return b
}

// WithoutResolvedVersion leaves the resolved version null.
func (b *DependencyBuilder) WithoutResolvedVersion() *DependencyBuilder {
	b.resolved = entities.NullValue()
	return b
}

// WithVersionNode binds the version field to the given node.
func (b *DependencyBuilder) WithVersionNode(node entities.TextNode) *DependencyBuilder {
	b.versionNode = node
	b.noNode = false
	return b
}

// WithoutVersionNode leaves the version field without a source node.
func (b *DependencyBuilder) WithoutVersionNode() *DependencyBuilder {
	b.versionNode = nil
	b.noNode = true
	return b
}

// WithDeclaration sets the declaration node used as identity.
func (b *DependencyBuilder) WithDeclaration(node entities.ElementNode) *DependencyBuilder {
	b.declaration = node
	return b
}

// Managed marks the dependency as declared under dependencyManagement.
func (b *DependencyBuilder) Managed() *DependencyBuilder {
	b.managed = true
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	declaration := b.declaration
	if declaration == nil {
		declaration = &entitydoubles.FakeElement{Tag: "dependency"}
	}

	versionNode := b.versionNode
	if versionNode == nil && !b.noNode {
		versionNode = &entitydoubles.FakeElement{Tag: "version", Content: b.rawVersion.Text, Path: "/project/dependencies/dependency/version"}
	}

	return entities.Dependency{
		Node:       declaration,
		GroupID:    b.groupID,
		ArtifactID: b.artifactID,
		Version: entities.VersionField{
			Resolved: b.resolved,
			Raw:      b.rawVersion,
			Node:     versionNode,
		},
		Managed: b.managed,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.groupID = entities.NewValue("org.example")
	b.artifactID = entities.NewValue("core")
	b.rawVersion = entities.NewValue("1.2.3")
	b.resolved = entities.NewValue("1.2.3")
	b.versionNode = nil
	b.noNode = false
	b.declaration = nil
	b.managed = false
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		groupID:     b.groupID,
		artifactID:  b.artifactID,
		rawVersion:  b.rawVersion,
		resolved:    b.resolved,
		versionNode: b.versionNode,
		noNode:      b.noNode,
		declaration: b.declaration,
		managed:     b.managed,
	}
}
