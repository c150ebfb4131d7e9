package services

import "strings"

// ScamClassifier flags messages containing any configured keyword
type ScamClassifier struct {
	keywords []string
}

// NewScamClassifier creates a classifier over lower-case keywords
func NewScamClassifier(keywords []string) *ScamClassifier {
	return &ScamClassifier{keywords: keywords}
}

// Classify reports whether any keyword occurs anywhere in text.
// text is expected to be case-folded already.
func (c *ScamClassifier) Classify(text string) bool {
	for _, k := range c.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// MatchedKeywords returns the keywords found in text, in list order
func (c *ScamClassifier) MatchedKeywords(text string) []string {
	var matched []string
	for _, k := range c.keywords {
		if strings.Contains(text, k) {
			matched = append(matched, k)
		}
	}
	return matched
}
