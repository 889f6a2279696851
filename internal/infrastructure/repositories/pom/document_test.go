//go:build unit

package pom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories/pom"
	"github.com/rios0rios0/pomlint/test/domain/entitybuilders"
)

func parse(t *testing.T, content string) *pom.Document {
	t.Helper()
	doc, err := pom.Parse("pom.xml", []byte(content))
	require.NoError(t, err)
	return doc
}

func TestDocumentDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should read direct and managed declarations separately", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewPomBuilder().
			WithDependency("org.apache.commons", "commons-lang3", "3.14.0").
			WithManagedDependency("com.google.guava", "guava", "33.0-jre").
			BuildXML()

		// when
		doc := parse(t, content)

		// then
		direct := doc.Dependencies()
		require.Len(t, direct, 1)
		assert.Equal(t, "org.apache.commons:commons-lang3", direct[0].Coordinates())
		assert.Equal(t, entities.NewValue("3.14.0"), direct[0].Version.Raw)
		assert.False(t, direct[0].Managed)

		managed := doc.ManagedDependencies()
		require.Len(t, managed, 1)
		assert.Equal(t, "guava", managed[0].ArtifactID.Text)
		assert.True(t, managed[0].Managed)
	})

	t.Run("should resolve property references in the version", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewPomBuilder().
			WithProperty("lib.version", "2.0").
			WithDependency("org.example", "lib", "${lib.version}").
			BuildXML()

		// when
		deps := parse(t, content).Dependencies()

		// then
		require.Len(t, deps, 1)
		assert.Equal(t, entities.NewValue("${lib.version}"), deps[0].Version.Raw)
		assert.Equal(t, entities.NewValue("2.0"), deps[0].Version.Resolved)
	})

	t.Run("should resolve the project version and nested references", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewPomBuilder().
			WithProjectVersion("4.1.0").
			WithProperty("base.version", "${project.version}").
			WithDependency("org.example", "sibling", "${base.version}-tests").
			BuildXML()

		// when
		deps := parse(t, content).Dependencies()

		// then
		require.Len(t, deps, 1)
		assert.Equal(t, entities.NewValue("4.1.0-tests"), deps[0].Version.Resolved)
	})

	t.Run("should leave the resolved version null when a reference is unknown", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewPomBuilder().
			WithDependency("org.example", "core", "1.0-${missing}").
			BuildXML()

		// when
		deps := parse(t, content).Dependencies()

		// then
		require.Len(t, deps, 1)
		assert.Equal(t, entities.NewValue("1.0-${missing}"), deps[0].Version.Raw)
		assert.False(t, deps[0].Version.Resolved.Valid)
	})

	t.Run("should read a blank version as empty and a missing coordinate as null", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewPomBuilder().
			WithDependency("org.example", "blank", "   ").
			WithUnversionedDependency("", "nogroup").
			BuildXML()

		// when
		deps := parse(t, content).Dependencies()

		// then
		require.Len(t, deps, 2)
		assert.Equal(t, entities.NewValue(""), deps[0].Version.Raw)
		assert.Equal(t, entities.NewValue(""), deps[0].Version.Resolved)
		assert.NotNil(t, deps[0].Version.Node)
		assert.False(t, deps[1].GroupID.Valid)
		assert.Nil(t, deps[1].Version.Node)
	})

	t.Run("should return the same node for the same declaration across reads", func(t *testing.T) {
		t.Parallel()

		// given
		doc := parse(t, entitybuilders.NewPomBuilder().
			WithDependency("org.example", "core", "1.2.3").
			BuildXML())

		// when
		first := doc.Dependencies()
		second := doc.Dependencies()

		// then
		assert.Same(t, first[0].Node, second[0].Node)
		assert.Same(t, first[0].Version.Node, second[0].Version.Node)
	})

	t.Run("should return nothing for a document without declarations", func(t *testing.T) {
		t.Parallel()

		// given
		doc := parse(t, entitybuilders.NewPomBuilder().BuildXML())

		// when
		direct := doc.Dependencies()
		managed := doc.ManagedDependencies()

		// then
		assert.Empty(t, direct)
		assert.Empty(t, managed)
	})
}

func TestDocumentProperties(t *testing.T) {
	t.Parallel()

	t.Run("should keep duplicate property names in document order", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewPomBuilder().
			WithProperty("x.version", "1.0").
			WithProperty("x.version", "2.0").
			BuildXML()

		// when
		properties := parse(t, content).Properties()

		// then
		assert.Equal(t, []entities.Property{
			{Name: "x.version", Value: "1.0"},
			{Name: "x.version", Value: "2.0"},
		}, properties)
	})

	t.Run("should resolve a duplicated property to its last value", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewPomBuilder().
			WithProperty("x.version", "1.0").
			WithProperty("x.version", "2.0").
			WithDependency("org.example", "x", "${x.version}").
			BuildXML()

		// when
		deps := parse(t, content).Dependencies()

		// then
		assert.Equal(t, "2.0", deps[0].Version.Resolved.Text)
	})
}

func TestDocumentLocation(t *testing.T) {
	t.Parallel()

	t.Run("should locate the version at its start tag", func(t *testing.T) {
		t.Parallel()

		// given
		doc := parse(t, entitybuilders.NewPomBuilder().
			WithDependency("org.example", "core", "1.2.3").
			BuildXML())
		version := doc.Dependencies()[0].Version.Node

		// when
		location, ok := version.Location()

		// then
		require.True(t, ok)
		assert.Equal(t, "/project/dependencies/dependency/version", location.Path)
		assert.Equal(t, 13, location.Line)
		assert.Equal(t, 13, location.Column)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("should write an unedited CRLF document back byte for byte", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<project>\r\n" +
			"  <properties>\r\n" +
			"  </properties>\r\n" +
			"  <name attr=\"a\">x &gt; y</name>\r\n" +
			"  <description></description>\r\n" +
			"  <url/>\r\n" +
			"  <inceptionYear>it's \"2024\"</inceptionYear>\r\n" +
			"</project>\r\n"
		doc := parse(t, content)

		// when
		data, err := doc.Bytes()

		// then
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	})

	t.Run("should keep LF line endings", func(t *testing.T) {
		t.Parallel()

		// given
		content := entitybuilders.NewPomBuilder().WithDependency("g", "core", "1").BuildXML()
		doc := parse(t, content)

		// when
		data, err := doc.Bytes()

		// then
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	})

	t.Run("should fail on malformed XML", func(t *testing.T) {
		t.Parallel()

		// given
		content := `<project><dependencies attr=></dependencies></project>`

		// when
		doc, err := pom.Parse("broken.xml", []byte(content))

		// then
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Contains(t, err.Error(), "broken.xml")
	})

	t.Run("should parse a document without a project element", func(t *testing.T) {
		t.Parallel()

		// given
		content := `<?xml version="1.0"?>`

		// when
		doc, err := pom.Parse("empty.xml", []byte(content))

		// then
		require.NoError(t, err)
		_, ok := doc.RootElement()
		assert.False(t, ok)
		assert.Empty(t, doc.Dependencies())
	})
}
