package content

import (
	"encoding/json"
	"log"
	"os"
	"strings"
)

type FaqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SiteEntry struct {
	URL     string   `json:"url"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

// Store holds the startup-loaded corpora. It is never mutated after Load.
type Store struct {
	faq  []FaqEntry
	site []SiteEntry
}

type aliasGroup struct {
	canonical string
	variants  []string
}

// phrasingAliases maps a canonical FAQ question to alternate phrasings users
// actually type. Aliases inherit the canonical entry's answer; groups whose
// canonical question is missing from the FAQ are skipped. Kept as an ordered
// list so expansion renders the same prompt for the same corpus every time.
var phrasingAliases = []aliasGroup{
	{"How can I purchase G Coins?", []string{"how to deposit", "how to buy g coin", "how to top up", "how to fund", "how to load my wallet"}},
	{"What is G Coin?", []string{"game currency", "what's the token", "in-game coin", "what is the coin"}},
	{"How to qualify for jackpot?", []string{"jackpot rules", "how do i win jackpot", "get jackpot tickets", "earn tickets"}},
	{"How do I sign up?", []string{"register", "create account", "get started"}},
	{"Is this gambling?", []string{"is this betting", "is this legal", "casino", "real money?"}},
}

// topicKeywords tags the current message with topics; SiteEntry tags are
// assigned at authoring time and only compared against this map's keys.
var topicKeywords = map[string][]string{
	"jackpot":   {"jackpot", "ticket", "prize"},
	"crash":     {"crash", "prediction", "upvsdown", "direction"},
	"gcoin":     {"g coin", "token", "coin", "utility", "presale", "deposit", "buy", "purchase", "fund", "top up"},
	"partner":   {"partner", "portal", "be the boss", "revenue"},
	"developer": {"api", "sdk", "developer", "build"},
	"sports":    {"sports", "pvp", "match", "football", "basketball"},
	"faq":       {"sign up", "register", "account", "wallet", "play"},
}

// Load reads both corpora once. A missing or unreadable file leaves that
// corpus empty; the assistant still runs, it just knows less.
func Load(faqPath, sitePath string) *Store {
	s := &Store{}
	if err := readJSON(faqPath, &s.faq); err != nil {
		log.Printf("[content] error loading FAQ corpus %s: %v", faqPath, err)
	}
	if err := readJSON(sitePath, &s.site); err != nil {
		log.Printf("[content] error loading site corpus %s: %v", sitePath, err)
	}
	return s
}

// NewStore builds a store from in-memory corpora.
func NewStore(faq []FaqEntry, site []SiteEntry) *Store {
	return &Store{faq: faq, site: site}
}

func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (s *Store) Faq() []FaqEntry   { return s.faq }
func (s *Store) Site() []SiteEntry { return s.site }

// ExpandedFaq returns the FAQ plus one derived entry per phrasing alias whose
// canonical question exists (case-insensitive match on the question text).
func (s *Store) ExpandedFaq() []FaqEntry {
	out := make([]FaqEntry, len(s.faq))
	copy(out, s.faq)
	for _, group := range phrasingAliases {
		answer, ok := s.answerFor(group.canonical)
		if !ok {
			continue
		}
		for _, alt := range group.variants {
			out = append(out, FaqEntry{Question: alt, Answer: answer})
		}
	}
	return out
}

func (s *Store) answerFor(question string) (string, bool) {
	q := strings.ToLower(question)
	for _, e := range s.faq {
		if strings.ToLower(e.Question) == q {
			return e.Answer, true
		}
	}
	return "", false
}

// MatchTopics returns the topics whose any trigger substring occurs in the
// lower-cased message.
func MatchTopics(message string) []string {
	m := strings.ToLower(message)
	var topics []string
	for topic, keywords := range topicKeywords {
		for _, kw := range keywords {
			if strings.Contains(m, kw) {
				topics = append(topics, topic)
				break
			}
		}
	}
	return topics
}

// FilterByTopics keeps site entries whose tags intersect the matched topics.
// An empty topic set keeps everything; filtering narrows the prompt, it does
// not decide relevance.
func (s *Store) FilterByTopics(topics []string) []SiteEntry {
	if len(topics) == 0 {
		return s.site
	}
	matched := make(map[string]bool, len(topics))
	for _, t := range topics {
		matched[t] = true
	}
	var out []SiteEntry
	for _, e := range s.site {
		for _, tag := range e.Tags {
			if matched[tag] {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
