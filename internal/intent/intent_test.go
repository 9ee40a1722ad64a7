package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_StatTriggers(t *testing.T) {
	cases := []string{
		"what's the gcoin price today?",
		"GCOIN PRICE???",
		"hey, what step are we on",
		"How Many Tokens Left until the bump",
		"is presale on right now",
		"tell me the g coin market cap please",
	}
	for _, msg := range cases {
		assert.Equal(t, KindStat, Detect(msg), "message: %q", msg)
	}
}

func TestDetect_Other(t *testing.T) {
	cases := []string{
		"",
		"how do i sign up?",
		"what are jackpot rules",
		"hello there",
	}
	for _, msg := range cases {
		assert.Equal(t, KindOther, Detect(msg), "message: %q", msg)
	}
}

func TestDetect_CaseInsensitiveContainment(t *testing.T) {
	// Containment, not equality: the trigger can sit anywhere in the text.
	assert.Equal(t, KindStat, Detect("yo AMY any idea about the Token Step situation?"))
}
