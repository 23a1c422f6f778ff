package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignite/email-validator/internal/validator"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		wantValid bool
	}{
		{"valid simple", "user@example.com", true},
		{"valid with plus", "user+tag@example.com", true},
		{"valid with dots", "first.last@example.com", true},
		{"valid subdomain", "user@mail.example.co.uk", true},
		{"valid single char", "a@b.com", true},
		{"valid unicode", "用户@example.com", true},
		{"empty", "", false},
		{"no at sign", "not-an-email", false},
		{"no dot in domain", "a@b", false},
		{"no domain", "user@", false},
		{"no local", "@example.com", false},
		{"two at signs", "user@@example.com", false},
		{"at in domain", "user@exa@mple.com", false},
		{"space in local", "us er@example.com", false},
		{"space in domain", "user@exam ple.com", false},
		{"leading space", " user@example.com", false},
		{"trailing space", "user@example.com ", false},
		{"tab in local", "us\ter@example.com", false},
		{"dot only after at", "user@.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validator.Validate(tt.email)
			assert.Equal(t, tt.wantValid, r.Valid)
			assert.Equal(t, tt.email, r.Email)

			// valid ⇔ quality_score == 0.8 ⇔ checks.syntax.valid
			if tt.wantValid {
				assert.Equal(t, 0.8, r.QualityScore)
			} else {
				assert.Equal(t, 0.0, r.QualityScore)
			}
			assert.Equal(t, r.Valid, r.Checks.Syntax.Valid)
		})
	}
}

func TestValidateBatch(t *testing.T) {
	batch := validator.ValidateBatch([]string{"a@b.com", "bad", "c@d.org", "x@y"})

	assert.Equal(t, 4, batch.Total)
	assert.Equal(t, 2, batch.ValidCount)
	assert.Len(t, batch.Results, 4)

	// Input order is preserved
	assert.Equal(t, "a@b.com", batch.Results[0].Email)
	assert.True(t, batch.Results[0].Valid)
	assert.Equal(t, "bad", batch.Results[1].Email)
	assert.False(t, batch.Results[1].Valid)
	assert.Equal(t, "c@d.org", batch.Results[2].Email)
	assert.True(t, batch.Results[2].Valid)
	assert.Equal(t, "x@y", batch.Results[3].Email)
	assert.False(t, batch.Results[3].Valid)
}

func TestValidateBatchEmpty(t *testing.T) {
	batch := validator.ValidateBatch(nil)

	assert.Equal(t, 0, batch.Total)
	assert.Equal(t, 0, batch.ValidCount)
	assert.NotNil(t, batch.Results, "results must serialize as [] not null")
	assert.Empty(t, batch.Results)
}

func TestValidateBatchAllInvalid(t *testing.T) {
	batch := validator.ValidateBatch([]string{"", "nope", "@", "a@b"})

	assert.Equal(t, 4, batch.Total)
	assert.Equal(t, 0, batch.ValidCount)
	for _, r := range batch.Results {
		assert.False(t, r.Valid)
		assert.Equal(t, 0.0, r.QualityScore)
		assert.False(t, r.Checks.Syntax.Valid)
	}
}
