package services

import "math/rand"

// RandomSource picks an index in [0, n)
type RandomSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.Intn(n) }

// ReplySelector chooses what the honeypot says back
type ReplySelector struct {
	replies []string
	neutral string
	rnd     RandomSource
}

// NewReplySelector creates a selector; a nil source uses math/rand
func NewReplySelector(replies []string, neutral string, rnd RandomSource) *ReplySelector {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &ReplySelector{
		replies: replies,
		neutral: neutral,
		rnd:     rnd,
	}
}

// Select returns a stalling question for scams and the neutral reply otherwise
func (r *ReplySelector) Select(isScam bool) string {
	if !isScam || len(r.replies) == 0 {
		return r.neutral
	}
	return r.replies[r.rnd.IntN(len(r.replies))]
}

// Opening is the canned reply for probes and bodies we cannot read
func (r *ReplySelector) Opening() string {
	if len(r.replies) == 0 {
		return r.neutral
	}
	return r.replies[0]
}
