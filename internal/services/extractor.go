package services

import (
	"regexp"

	"github.com/Ananth-NQI/scam-honeypot/internal/models"
)

var (
	upiPattern         = regexp.MustCompile(`\b[\w.\-]+@\w+\b`)
	urlPattern         = regexp.MustCompile(`https?://\S+`)
	bankAccountPattern = regexp.MustCompile(`\b\d{9,18}\b`)
)

// ExtractIntelligence scans a single message for UPI handles, links and
// account-number-like digit runs. Keywords are filled in by the classifier.
// \w, \d and \b are ASCII-only, so non-Latin handles and digits are skipped.
func ExtractIntelligence(text string) models.Intelligence {
	return models.Intelligence{
		BankAccounts:  bankAccountPattern.FindAllString(text, -1),
		UPIIDs:        upiPattern.FindAllString(text, -1),
		PhishingLinks: urlPattern.FindAllString(text, -1),
	}
}
