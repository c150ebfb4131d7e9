package models

// Intelligence holds identifiers pulled out of scammer messages
type Intelligence struct {
	BankAccounts       []string `json:"bankAccounts"`
	UPIIDs             []string `json:"upiIds"`
	PhishingLinks      []string `json:"phishingLinks"`
	SuspiciousKeywords []string `json:"suspiciousKeywords"`
}

// IsEmpty reports whether nothing was extracted
func (i Intelligence) IsEmpty() bool {
	return len(i.BankAccounts) == 0 && len(i.UPIIDs) == 0 &&
		len(i.PhishingLinks) == 0 && len(i.SuspiciousKeywords) == 0
}
