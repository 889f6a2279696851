package entities

import "sort"

// Finding is the serializable form of a diagnostic.
type Finding struct {
	File       string   `json:"file"        yaml:"file"`
	Line       int      `json:"line"        yaml:"line"`
	Column     int      `json:"column"      yaml:"column"`
	Path       string   `json:"path"        yaml:"path"`
	GroupID    string   `json:"group_id"    yaml:"group_id"`
	ArtifactID string   `json:"artifact_id" yaml:"artifact_id"`
	Version    string   `json:"version"     yaml:"version"`
	Managed    bool     `json:"managed"     yaml:"managed"`
	Property   string   `json:"property"    yaml:"property"`
	Severity   Severity `json:"severity"    yaml:"severity"`
	Fix        string   `json:"fix"         yaml:"fix"`
	Message    string   `json:"message"     yaml:"message"`
}

// NewFinding converts a diagnostic found in file.
func NewFinding(file string, diagnostic Diagnostic) Finding {
	dep := diagnostic.Dependency
	return Finding{
		File:       file,
		Line:       diagnostic.Location.Line,
		Column:     diagnostic.Location.Column,
		Path:       diagnostic.Location.Path,
		GroupID:    dep.GroupID.String(),
		ArtifactID: dep.ArtifactID.String(),
		Version:    dep.Version.Raw.String(),
		Managed:    dep.Managed,
		Property:   diagnostic.Fix.PropertyName,
		Severity:   diagnostic.Severity,
		Fix:        diagnostic.Label(),
		Message:    diagnostic.Message,
	}
}

// FileError records a file that could not be inspected.
type FileError struct {
	File  string `json:"file"  yaml:"file"`
	Error string `json:"error" yaml:"error"`
}

// Report is the result of inspecting a set of project files.
type Report struct {
	Files    []string    `json:"files"            yaml:"files"`
	Findings []Finding   `json:"findings"         yaml:"findings"`
	Errors   []FileError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Sort orders files, findings and errors by file, then by position.
func (r *Report) Sort() {
	sort.Strings(r.Files)
	sort.SliceStable(r.Findings, func(i, j int) bool {
		a, b := r.Findings[i], r.Findings[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	sort.SliceStable(r.Errors, func(i, j int) bool {
		return r.Errors[i].File < r.Errors[j].File
	})
}

// FixResult is the outcome of fixing one file.
type FixResult struct {
	File             string
	Applied          []string // property names created
	PartiallyApplied []string // property names whose version was rewritten without a property
	Saved            bool
}

// Changed reports whether any fix touched the document.
func (r FixResult) Changed() bool {
	return len(r.Applied) > 0 || len(r.PartiallyApplied) > 0
}
