package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categorized struct{}

func (categorized) Error() string                { return "categorized" }
func (categorized) ErrorCategory() ErrorCategory { return CategoryConflict }

type recordingReporter struct {
	enabled  bool
	reported []*EnhancedError
}

func (r *recordingReporter) IsEnabled() bool { return r.enabled }

func (r *recordingReporter) ReportError(ee *EnhancedError) {
	r.reported = append(r.reported, ee)
	ee.MarkReported()
}

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	ee := New(fmt.Errorf("test error")).Build()

	assert.Equal(t, "test error", ee.Error())
	assert.Equal(t, ComponentUnknown, ee.Component)
	assert.Equal(t, CategoryGeneric, ee.Category)
	assert.Nil(t, ee.GetContext())
}

func TestBuildTakesCategoryFromWrappedError(t *testing.T) {
	t.Parallel()

	ee := New(fmt.Errorf("wrapped: %w", categorized{})).Build()
	assert.Equal(t, CategoryConflict, ee.Category)

	outer := New(ee).Build()
	assert.Equal(t, CategoryConflict, outer.Category)
}

func TestBuilderContext(t *testing.T) {
	t.Parallel()

	ee := Newf("species %q clashes", "Mallard").
		Category(CategoryConflict).
		Component("birdgroups").
		Context("species", "Mallard").
		FileContext("/etc/birdgroups/Registry.YAML").
		Build()

	assert.Equal(t, `species "Mallard" clashes`, ee.Error())
	assert.Equal(t, "birdgroups", ee.Component)

	ctx := ee.GetContext()
	assert.Equal(t, "Mallard", ctx["species"])
	assert.Equal(t, "yaml", ctx["file_extension"])

	// returned map is a copy
	ctx["species"] = "Gadwall"
	assert.Equal(t, "Mallard", ee.GetContext()["species"])
}

func TestIsCategory(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load failed: %w", Newf("bad").Category(CategoryConflict).Build())

	assert.True(t, IsCategory(err, CategoryConflict))
	assert.True(t, IsConflict(err))
	assert.False(t, IsCategory(err, CategoryValidation))
	assert.False(t, IsConflict(fmt.Errorf("plain")))
	assert.True(t, Is(err, &EnhancedError{Category: CategoryConflict}))
}

func TestTelemetryReporter(t *testing.T) {
	reporter := &recordingReporter{enabled: true}
	SetTelemetryReporter(reporter)
	t.Cleanup(func() { SetTelemetryReporter(nil) })

	ee := Newf("reported").Category(CategoryValidation).Build()

	require.Len(t, reporter.reported, 1)
	assert.Same(t, ee, reporter.reported[0])
	assert.True(t, ee.IsReported())

	SetTelemetryReporter(&recordingReporter{enabled: false})
	Newf("not reported").Build()
	assert.Len(t, reporter.reported, 1)
}

func TestScrubMessageForPrivacy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains string
		absent   string
	}{
		{
			name:     "url query",
			input:    "Error at https://api.example.com?api_key=secret123&token=abc",
			contains: "https://api.example.com?[REDACTED]",
			absent:   "secret123",
		},
		{
			name:     "api key",
			input:    "Config error: api_key=secret123 is invalid",
			contains: "[API_KEY_REDACTED]",
			absent:   "secret123",
		},
		{
			name:     "home directory",
			input:    "failed to read /home/alice/registry.yaml",
			contains: "/home/[USER]/registry.yaml",
			absent:   "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			scrubbed := scrubMessageForPrivacy(tt.input)
			assert.Contains(t, scrubbed, tt.contains)
			assert.NotContains(t, scrubbed, tt.absent)
		})
	}
}

func TestGenerateErrorTitle(t *testing.T) {
	t.Parallel()

	ee := Newf("x").Component("birdgroups").Category(CategoryConflict).Build()
	assert.Equal(t, "Birdgroups Conflict Error", generateErrorTitle(ee))

	anon := &EnhancedError{Err: fmt.Errorf("x"), Component: ComponentUnknown}
	assert.Equal(t, "*errors.errorString", generateErrorTitle(anon))
}
