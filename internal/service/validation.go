package service

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// isValidEmail is a shallow shape check; deliverability is not our problem.
func isValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// isValidISBN accepts ISBN-10 and ISBN-13 shapes after stripping separators.
// Checksum verification is intentionally skipped; catalog imports carry
// enough historic typos that a hard checksum check rejects real books.
func isValidISBN(isbn string) bool {
	s := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(isbn))
	switch len(s) {
	case 10:
		for i, r := range s {
			if r >= '0' && r <= '9' {
				continue
			}
			// ISBN-10 allows X as the final check digit.
			if i == 9 && (r == 'X' || r == 'x') {
				continue
			}
			return false
		}
		return true
	case 13:
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isValidRole(role string) bool {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "member", "librarian":
		return true
	default:
		return false
	}
}
