package services

import (
	"fmt"
	"net/mail"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nexora-labs/website-backend/models"
)

// maxUploadSize is the ceiling for any uploaded attachment.
const maxUploadSize = 5 << 20 // 5 MiB

// ValidationError reports one or more per-field rule violations. Validation
// is pure: it inspects only the input document and never touches storage.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// validateParticipant applies the entity-level field rules to one roster
// entry, recording violations under prefix-qualified field names
// (e.g. "members[1].phone"), and returns the normalized record.
func validateParticipant(ve *ValidationError, prefix string, in ParticipantInput, leader bool) models.RosterMember {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		ve.add(prefix+".full_name", "full name is required")
	}
	if !validEmail(strings.TrimSpace(in.Email)) {
		ve.add(prefix+".email", "a valid email address is required")
	}
	if !validPhone(in.Phone) {
		ve.add(prefix+".phone", "phone must contain exactly 10 digits")
	}
	branch := models.Branch(in.Branch)
	if !branch.Valid() {
		ve.add(prefix+".branch", "branch must be one of CSE, ECE, EEE, IT")
	}
	section := models.Section(in.Section)
	if !section.Valid() {
		ve.add(prefix+".section", "section must be A or B")
	}
	year := models.Year(in.Year)
	if !year.Valid() {
		ve.add(prefix+".year", "year must be one of 1st, 2nd, 3rd, 4th")
	}

	// Emails are stored lowercase so the per-team uniqueness constraint
	// matches the case-insensitive duplicate check on the request.
	return models.RosterMember{
		FullName: fullName,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:    in.Phone,
		Branch:   branch,
		Section:  section,
		Year:     year,
		Leader:   leader,
	}
}

// validateUpload checks an attachment against the extension whitelist and
// the size ceiling. The whole submission fails on violation; there is no
// partial acceptance.
func validateUpload(field, filename string, size int64, allowedExts ...string) *ValidationError {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, a := range allowedExts {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		return newValidationError(field, fmt.Sprintf("file type %q is not accepted (expected %s)", ext, strings.Join(allowedExts, ", ")))
	}
	if size > maxUploadSize {
		return newValidationError(field, fmt.Sprintf("file exceeds the %d MiB limit", maxUploadSize>>20))
	}
	return nil
}
