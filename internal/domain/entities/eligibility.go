package entities

import "strings"

const (
	placeholderOpen  = "${"
	placeholderClose = "}"
	propertySuffix   = ".version"
	nullLiteral      = "null"
)

// SkipReason tells why a declaration is not reported.
type SkipReason string

const (
	SkipNone                 SkipReason = ""
	SkipMissingGroupID       SkipReason = "missing-group-id"
	SkipMissingArtifactID    SkipReason = "missing-artifact-id"
	SkipMissingVersion       SkipReason = "missing-version"
	SkipNullVersion          SkipReason = "null-version"
	SkipAlreadyParameterized SkipReason = "already-parameterized"
)

// Classification is the outcome of Classify. When Eligible is false, Reason
// holds the cause and the remaining fields are zero.
type Classification struct {
	Eligible        bool
	Reason          SkipReason
	ArtifactID      string
	ResolvedVersion Value
	Version         VersionField
}

// Classify decides whether a dependency's version can be extracted into a
// property. Only the raw version text is inspected; the resolved version is
// carried along even when it is null.
func Classify(dep Dependency) Classification {
	if dep.GroupID.IsBlank() {
		return Classification{Reason: SkipMissingGroupID}
	}
	if dep.ArtifactID.IsBlank() {
		return Classification{Reason: SkipMissingArtifactID}
	}
	if reason := rawVersionSkipReason(dep.Version.Raw); reason != SkipNone {
		return Classification{Reason: reason}
	}

	return Classification{
		Eligible:        true,
		ArtifactID:      dep.ArtifactID.Text,
		ResolvedVersion: dep.Version.Resolved,
		Version:         dep.Version,
	}
}

// IsExtractable reports whether raw version text is a concrete literal.
func IsExtractable(raw Value) bool {
	return rawVersionSkipReason(raw) == SkipNone
}

func rawVersionSkipReason(raw Value) SkipReason {
	switch {
	case !raw.Valid:
		return SkipMissingVersion
	case raw.Text == nullLiteral:
		return SkipNullVersion
	case strings.HasPrefix(raw.Text, placeholderOpen):
		return SkipAlreadyParameterized
	}
	return SkipNone
}

// PropertyName derives the property name for an artifact. The name never
// depends on the properties already present in the document.
func PropertyName(artifactID string) string {
	return artifactID + propertySuffix
}

// PlaceholderExpression wraps a property name into a ${...} reference.
func PlaceholderExpression(propertyName string) string {
	return placeholderOpen + propertyName + placeholderClose
}
