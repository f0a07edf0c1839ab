package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"ten digits", "9876543210", true},
		{"too short", "987654321", false},
		{"too long", "98765432100", false},
		{"contains letter", "98765432a0", false},
		{"contains dash", "987-654-32", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validPhone(tt.phone))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("priya@example.com"))
	assert.False(t, validEmail(""))
	assert.False(t, validEmail("not-an-email"))
	assert.False(t, validEmail("missing@"))
}

func TestValidateParticipant_CollectsAllFieldErrors(t *testing.T) {
	ve := &ValidationError{}
	validateParticipant(ve, "members[1]", ParticipantInput{
		FullName: "",
		Email:    "bad",
		Phone:    "123",
		Branch:   "MECH",
		Section:  "C",
		Year:     "5th",
	}, false)

	require.False(t, ve.empty())
	for _, field := range []string{
		"members[1].full_name",
		"members[1].email",
		"members[1].phone",
		"members[1].branch",
		"members[1].section",
		"members[1].year",
	} {
		assert.Contains(t, ve.Fields, field)
	}
}

func TestValidateParticipant_NormalizesAndFlagsLeader(t *testing.T) {
	ve := &ValidationError{}
	member := validateParticipant(ve, "leader", ParticipantInput{
		FullName: "  Priya Sharma  ",
		Email:    " Priya@Example.COM ",
		Phone:    "9876543210",
		Branch:   "CSE",
		Section:  "A",
		Year:     "3rd",
	}, true)

	require.True(t, ve.empty())
	assert.Equal(t, "Priya Sharma", member.FullName)
	assert.Equal(t, "priya@example.com", member.Email)
	assert.True(t, member.Leader)
}

func TestValidateUpload(t *testing.T) {
	t.Run("accepts pdf under the limit", func(t *testing.T) {
		assert.Nil(t, validateUpload("resume", "resume.pdf", 1024, ".pdf"))
	})

	t.Run("extension check is case insensitive", func(t *testing.T) {
		assert.Nil(t, validateUpload("resume", "Resume.PDF", 1024, ".pdf"))
	})

	t.Run("rejects wrong extension", func(t *testing.T) {
		ve := validateUpload("resume", "resume.docx", 1024, ".pdf")
		require.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "resume")
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		ve := validateUpload("resume", "resume.pdf", maxUploadSize+1, ".pdf")
		require.NotNil(t, ve)
		assert.Contains(t, ve.Fields, "resume")
	})

	t.Run("accepts file exactly at the limit", func(t *testing.T) {
		assert.Nil(t, validateUpload("resume", "resume.pdf", maxUploadSize, ".pdf"))
	})
}

func TestValidationError_ErrorIsDeterministic(t *testing.T) {
	ve := &ValidationError{}
	ve.add("b", "second")
	ve.add("a", "first")
	assert.Equal(t, "validation failed: a: first; b: second", ve.Error())
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "annual_report_2025.pdf", sanitizeFilename("annual report 2025.pdf"))
	assert.Equal(t, "report.pdf", sanitizeFilename("../../etc/report.pdf"))
	assert.Equal(t, "file", sanitizeFilename("////"))
}
