package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/sill/pkg/schema"
)

func TestRenderReport(t *testing.T) {
	t.Run("problems first, then valid, then summary", func(t *testing.T) {
		rep := &schema.Report{
			Missing: []string{"API_KEY"},
			Invalid: []*schema.FieldError{{Field: "PORT", Reason: schema.ReasonInvalidNumber}},
			Valid:   []string{"HOST"},
		}

		want := "  ✗ API_KEY  Required value is missing\n" +
			"  ✗ PORT     Invalid number\n" +
			"  ✓ HOST\n" +
			"\n" +
			"Environment validation failed: 2 problem(s) found.\n"
		assert.Equal(t, want, RenderReport(rep, false))
	})

	t.Run("all valid", func(t *testing.T) {
		rep := &schema.Report{Valid: []string{"HOST", "PORT"}}

		got := RenderReport(rep, false)
		assert.Contains(t, got, "  ✓ HOST\n")
		assert.Contains(t, got, "  ✓ PORT\n")
		assert.Contains(t, got, "Environment is valid! ✅ (2 checked)")
	})

	t.Run("empty report", func(t *testing.T) {
		got := RenderReport(&schema.Report{}, false)
		assert.Contains(t, got, "Environment is valid! ✅ (0 checked)")
	})
}
