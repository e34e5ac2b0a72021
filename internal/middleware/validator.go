package middleware

import (
	"fmt"
	"net/mail"
	"path/filepath"
	"strings"
)

// Input validation and sanitization utilities for scan submissions

// ValidateEmail checks the recipient address is a well-formed, bare
// address (no display name, no address list).
func ValidateEmail(address string) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("email address cannot be empty")
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}
	if parsed.Address != address {
		return fmt.Errorf("email address must not contain a display name")
	}
	return nil
}

// ValidateFileName checks the upload looks like a resume file we accept.
// This is a cheap pre-filter; the extractor makes the final call based on
// the declared MIME type as well.
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".pdf" && ext != ".docx" {
		return fmt.Errorf("unsupported file extension %q (allowed: .pdf, .docx)", ext)
	}
	return nil
}

// ValidateFileSize rejects empty and oversized uploads
func ValidateFileSize(size, max int64) error {
	if size == 0 {
		return fmt.Errorf("file is empty")
	}
	if max > 0 && size > max {
		return fmt.Errorf("file too large: %d bytes (max %d)", size, max)
	}
	return nil
}

// SanitizeString removes null bytes and control characters from strings
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}
