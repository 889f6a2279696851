//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"
)

type pomDependency struct {
	groupID    string
	artifactID string
	version    string
	hasVersion bool
}

type pomProperty struct {
	name  string
	value string
}

// PomBuilder helps create pom.xml contents with a fluent interface.
// Empty coordinates are left out of the generated XML.
type PomBuilder struct {
	*testkit.BaseBuilder
	projectVersion string
	dependencies   []pomDependency
	managed        []pomDependency
	properties     []pomProperty
	withProperties bool
}

// NewPomBuilder creates a new builder for a project with an empty
// <properties> block and no dependencies.
func NewPomBuilder() *PomBuilder {
	return &PomBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		projectVersion: "1.0.0",
		withProperties: true,
	}
}

// WithProjectVersion sets /project/version.
func (b *PomBuilder) WithProjectVersion(version string) *PomBuilder {
	b.projectVersion = version
	return b
}

// WithDependency adds a direct dependency.
func (b *PomBuilder) WithDependency(groupID, artifactID, version string) *PomBuilder {
	b.dependencies = append(b.dependencies, pomDependency{groupID, artifactID, version, true})
	return b
}

// WithUnversionedDependency adds a direct dependency without <version>.
func (b *PomBuilder) WithUnversionedDependency(groupID, artifactID string) *PomBuilder {
	b.dependencies = append(b.dependencies, pomDependency{groupID: groupID, artifactID: artifactID})
	return b
}

// WithManagedDependency adds a dependency under <dependencyManagement>.
func (b *PomBuilder) WithManagedDependency(groupID, artifactID, version string) *PomBuilder {
	b.managed = append(b.managed, pomDependency{groupID, artifactID, version, true})
	return b
}

// WithProperty adds an entry to <properties>.
func (b *PomBuilder) WithProperty(name, value string) *PomBuilder {
	b.withProperties = true
	b.properties = append(b.properties, pomProperty{name, value})
	return b
}

// WithoutProperties leaves the <properties> block out entirely.
func (b *PomBuilder) WithoutProperties() *PomBuilder {
	b.withProperties = false
	b.properties = nil
	return b
}

// Build creates the pom.xml content (satisfies testkit.Builder interface).
func (b *PomBuilder) Build() interface{} {
	return b.BuildXML()
}

// BuildXML creates the pom.xml content as a string.
func (b *PomBuilder) BuildXML() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<project xmlns="http://maven.apache.org/POM/4.0.0">` + "\n")
	sb.WriteString("    <modelVersion>4.0.0</modelVersion>\n")
	sb.WriteString("    <groupId>org.example</groupId>\n")
	sb.WriteString("    <artifactId>app</artifactId>\n")
	if b.projectVersion != "" {
		sb.WriteString("    <version>" + b.projectVersion + "</version>\n")
	}

	if b.withProperties {
		if len(b.properties) == 0 {
			sb.WriteString("    <properties>\n    </properties>\n")
		} else {
			sb.WriteString("    <properties>\n")
			for _, p := range b.properties {
				sb.WriteString("        <" + p.name + ">" + p.value + "</" + p.name + ">\n")
			}
			sb.WriteString("    </properties>\n")
		}
	}

	if len(b.dependencies) > 0 {
		writeDependencies(&sb, b.dependencies, "    ")
	}
	if len(b.managed) > 0 {
		sb.WriteString("    <dependencyManagement>\n")
		writeDependencies(&sb, b.managed, "        ")
		sb.WriteString("    </dependencyManagement>\n")
	}

	sb.WriteString("</project>\n")
	return sb.String()
}

func writeDependencies(sb *strings.Builder, deps []pomDependency, indent string) {
	sb.WriteString(indent + "<dependencies>\n")
	for _, d := range deps {
		sb.WriteString(indent + "    <dependency>\n")
		if d.groupID != "" {
			sb.WriteString(indent + "        <groupId>" + d.groupID + "</groupId>\n")
		}
		if d.artifactID != "" {
			sb.WriteString(indent + "        <artifactId>" + d.artifactID + "</artifactId>\n")
		}
		if d.hasVersion {
			sb.WriteString(indent + "        <version>" + d.version + "</version>\n")
		}
		sb.WriteString(indent + "    </dependency>\n")
	}
	sb.WriteString(indent + "</dependencies>\n")
}

// Reset clears the builder state, allowing it to be reused.
func (b *PomBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.projectVersion = "1.0.0"
	b.dependencies = nil
	b.managed = nil
	b.properties = nil
	b.withProperties = true
	return b
}

// Clone creates a deep copy of the PomBuilder.
func (b *PomBuilder) Clone() testkit.Builder {
	return &PomBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		projectVersion: b.projectVersion,
		dependencies:   append([]pomDependency(nil), b.dependencies...),
		managed:        append([]pomDependency(nil), b.managed...),
		properties:     append([]pomProperty(nil), b.properties...),
		withProperties: b.withProperties,
	}
}
