package knowledge

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec carries the persona and prompt text the resolver works with. It is
// loaded from a YAML file at startup so copy can be tuned without a rebuild.
type Spec struct {
	System         string   `yaml:"system"`
	SmalltalkReply string   `yaml:"smalltalk_reply"`
	Smalltalk      []string `yaml:"smalltalk_triggers"`
	PromptHeader   string   `yaml:"prompt_header"`
	RefusalLine    string   `yaml:"refusal_line"`
	Style          struct {
		Temperature float32 `yaml:"temperature"`
	} `yaml:"style"`
}

// DefaultSpec is the compiled-in persona, used when no spec file is present.
func DefaultSpec() Spec {
	s := Spec{
		System: "You're CryptoAmy — the ultimate Web3 assistant. You explain things clearly like a calm educator, " +
			"chat casually like a crypto-savvy friend, and sprinkle in humor or emojis like a Gen Z meme queen. " +
			"Keep answers short, sharp, and real — no guessing or fluff. Pull only from the FAQ and site content. " +
			"If the info isn't available, say: 'Not in my vault of Web3 wisdom. Try https://playw3.com or ping support!'",
		SmalltalkReply: "Hey there! I'm CryptoAmy — your Web3 sidekick. Ask me about games, G Coin, jackpots, or how to earn!",
		Smalltalk:      []string{"how are you", "who are you", "what's up", "gm", "hi", "hello"},
		PromptHeader: "You're CryptoAmy — a confident, helpful Web3 assistant. Only answer using the FAQ and Website content below.\n" +
			"If the answer isn't here, say: \"Hmm, not seeing that here. Check https://playw3.com or ping support!\"",
		RefusalLine: "Hmm, not seeing that here. Check https://playw3.com or ping support!",
	}
	s.Style.Temperature = 0.4
	return s
}

// LoadSpec reads the persona file, falling back to DefaultSpec when the file
// does not exist. Malformed YAML is an error; running with a half-read
// persona would be worse than not starting.
func LoadSpec(path string) (Spec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSpec(), nil
		}
		return Spec{}, err
	}
	spec := DefaultSpec()
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return Spec{}, err
	}
	if spec.Style.Temperature <= 0 {
		spec.Style.Temperature = 0.4
	}
	return spec, nil
}
