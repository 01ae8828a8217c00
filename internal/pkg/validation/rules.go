package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern is the accepted email shape.
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// StudentNoPattern matches student numbers like "2024001".
	StudentNoPattern = `^\d{7}$`

	// FacultyNoPattern matches faculty numbers like "FAC2024001".
	FacultyNoPattern = `^FAC\d{7}$`

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email     *regexp.Regexp
	StudentNo *regexp.Regexp
	FacultyNo *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	StudentNo: regexp.MustCompile(StudentNoPattern),
	FacultyNo: regexp.MustCompile(FacultyNoPattern),
}

// ValidEmail reports whether s matches the accepted email shape.
func ValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// ValidStudentNo reports whether s is a well-formed student number.
func ValidStudentNo(s string) bool {
	return CompiledPatterns.StudentNo.MatchString(s)
}

// ValidFacultyNo reports whether s is a well-formed faculty number.
func ValidFacultyNo(s string) bool {
	return CompiledPatterns.FacultyNo.MatchString(s)
}
