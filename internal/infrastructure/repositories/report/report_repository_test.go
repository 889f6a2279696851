//go:build unit

package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/pomlint/internal/domain/entities"
	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories/report"
)

func sampleReport() entities.Report {
	return entities.Report{
		Files: []string{"pom.xml", "api/pom.xml"},
		Findings: []entities.Finding{{
			File:       "pom.xml",
			Line:       13,
			Column:     13,
			Path:       "/project/dependencies/dependency/version",
			GroupID:    "org.apache.commons",
			ArtifactID: "commons-lang3",
			Version:    "3.14.0",
			Property:   "commons-lang3.version",
			Severity:   entities.SeverityWeakWarning,
			Fix:        entities.ExtractFixLabel,
		}},
		Errors: []entities.FileError{{File: "api/pom.xml", Error: "failed to parse"}},
	}
}

func TestTextReportRepository(t *testing.T) {
	t.Parallel()

	t.Run("should render findings, errors and a summary", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		repository := report.NewTextReportRepository()

		// when
		err := repository.Write(&out, sampleReport())

		// then
		require.NoError(t, err)
		assert.Equal(t, "text", repository.Format())
		assert.Contains(t, out.String(), "org.apache.commons:commons-lang3")
		assert.Contains(t, out.String(), "commons-lang3.version")
		assert.Contains(t, out.String(), "Extract to properties")
		assert.Contains(t, out.String(), "error: api/pom.xml: failed to parse")
		assert.Contains(t, out.String(), "(1 findings in 2 files)")
	})

	t.Run("should only print the summary for a clean report", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer

		// when
		err := report.NewTextReportRepository().Write(&out, entities.Report{Files: []string{"pom.xml"}})

		// then
		require.NoError(t, err)
		assert.Equal(t, "(0 findings in 1 files)\n", out.String())
	})
}

func TestJSONReportRepository(t *testing.T) {
	t.Parallel()

	t.Run("should encode the report as JSON", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		repository := report.NewJSONReportRepository()

		// when
		err := repository.Write(&out, sampleReport())

		// then
		require.NoError(t, err)
		assert.Equal(t, "json", repository.Format())
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		findings, ok := decoded["findings"].([]interface{})
		require.True(t, ok)
		require.Len(t, findings, 1)
		finding := findings[0].(map[string]interface{})
		assert.Equal(t, "commons-lang3.version", finding["property"])
		assert.Equal(t, "weak_warning", finding["severity"])
		assert.InDelta(t, 13, finding["line"], 0)
	})
}

func TestYAMLReportRepository(t *testing.T) {
	t.Parallel()

	t.Run("should encode the report as YAML", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		repository := report.NewYAMLReportRepository()

		// when
		err := repository.Write(&out, sampleReport())

		// then
		require.NoError(t, err)
		assert.Equal(t, "yaml", repository.Format())
		var decoded entities.Report
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, sampleReport(), decoded)
	})
}
