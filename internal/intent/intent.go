package intent

import "strings"

type Kind string

const (
	// KindStat routes to the live G Coin stat pipeline.
	KindStat Kind = "gcoin_stat"
	// KindOther routes to the FAQ/site knowledge pipeline.
	KindOther Kind = "other"
)

// gcoinTriggers routes a message to the stat pipeline when any phrase occurs
// in the lower-cased text. Containment is a boolean OR, so order is irrelevant.
var gcoinTriggers = []string{
	"g coin", "gcoin", "gcoin price", "current token price", "token price",
	"how much is gcoin", "what step are we", "step are we on", "step are we in",
	"what step is presale", "how many tokens left", "tokens until next step",
	"gcoin presale", "is presale on", "how many holders", "gcoin holders",
	"g coin holders", "presale phase", "gcoin supply", "gcoin stats",
	"price of gcoin", "token step", "token stage", "how much gcoin sold",
	"how many tokens sold", "g coin market cap",
}

// Detect performs simple substring heuristics to pick a pipeline.
func Detect(message string) Kind {
	m := strings.ToLower(message)
	if containsAny(m, gcoinTriggers) {
		return KindStat
	}
	return KindOther
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
