package content

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	return NewStore(
		[]FaqEntry{
			{Question: "What is G Coin?", Answer: "The platform token."},
			{Question: "How do I sign up?", Answer: "On the website."},
		},
		[]SiteEntry{
			{URL: "https://playw3.com/jackpot", Tags: []string{"jackpot"}, Content: "jackpot page"},
			{URL: "https://playw3.com/gcoin", Tags: []string{"gcoin", "faq"}, Content: "gcoin page"},
			{URL: "https://playw3.com/partners", Tags: []string{"partner"}, Content: "partner page"},
		},
	)
}

func TestExpandedFaq_AliasesShareCanonicalAnswer(t *testing.T) {
	s := testStore()
	expanded := s.ExpandedFaq()

	byQuestion := make(map[string]string, len(expanded))
	for _, e := range expanded {
		byQuestion[e.Question] = e.Answer
	}

	// "What is G Coin?" has four aliases; each inherits its answer.
	for _, alias := range []string{"game currency", "what's the token", "in-game coin", "what is the coin"} {
		assert.Equal(t, "The platform token.", byQuestion[alias])
	}
	// "How do I sign up?" aliases likewise.
	assert.Equal(t, "On the website.", byQuestion["register"])
	assert.Equal(t, "On the website.", byQuestion["create account"])
}

func TestExpandedFaq_MissingCanonicalSkipsGroup(t *testing.T) {
	s := testStore()
	expanded := s.ExpandedFaq()

	// "Is this gambling?" is not in the FAQ, so none of its aliases appear.
	for _, e := range expanded {
		assert.NotEqual(t, "is this betting", e.Question)
		assert.NotEqual(t, "casino", e.Question)
	}
	// Originals + 4 gcoin aliases + 3 signup aliases.
	assert.Len(t, expanded, 2+4+3)
}

func TestExpandedFaq_CanonicalMatchIsCaseInsensitive(t *testing.T) {
	s := NewStore([]FaqEntry{{Question: "WHAT IS G COIN?", Answer: "ans"}}, nil)
	expanded := s.ExpandedFaq()
	require.Len(t, expanded, 1+4)
	assert.Equal(t, "ans", expanded[len(expanded)-1].Answer)
}

func TestExpandedFaq_DoesNotMutateStore(t *testing.T) {
	s := testStore()
	_ = s.ExpandedFaq()
	assert.Len(t, s.Faq(), 2)
}

func TestMatchTopics(t *testing.T) {
	topics := MatchTopics("how do I win the JACKPOT and get a prize")
	assert.Contains(t, topics, "jackpot")
	assert.NotContains(t, topics, "partner")

	assert.Empty(t, MatchTopics("completely unrelated text"))
}

func TestFilterByTopics(t *testing.T) {
	s := testStore()

	filtered := s.FilterByTopics([]string{"jackpot"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "https://playw3.com/jackpot", filtered[0].URL)

	// Empty topic set keeps the whole corpus.
	assert.Len(t, s.FilterByTopics(nil), 3)

	// A topic touching no tags filters everything out.
	assert.Empty(t, s.FilterByTopics([]string{"sports"}))
}

func TestLoad_MissingFilesYieldEmptyStore(t *testing.T) {
	dir := t.TempDir()
	s := Load(filepath.Join(dir, "nope.json"), filepath.Join(dir, "also-nope.json"))
	assert.Empty(t, s.Faq())
	assert.Empty(t, s.Site())
}
