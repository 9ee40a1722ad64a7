package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string
	// OpenAI
	OpenAIAPIKey string
	Model        string
	// CometChat delivery
	CometChatAppID   string
	CometChatAPIKey  string
	CometChatBaseURL string
	// The assistant's own uid on the chat platform, used for loop prevention.
	BotUID string
	// G Coin dashboard
	GcoinURL     string
	SnapshotFile string
	// Static corpora
	FaqFile     string
	SiteFile    string
	PersonaFile string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:             getEnvDefault("PORT", "3000"),
		AllowedOrigin:    getEnvDefault("ALLOWED_ORIGIN", "*"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		Model:            getEnvDefault("OPENAI_MODEL", "gpt-4"),
		CometChatAppID:   os.Getenv("COMETCHAT_APP_ID"),
		CometChatAPIKey:  os.Getenv("COMETCHAT_API_KEY"),
		CometChatBaseURL: getEnvDefault("COMETCHAT_BASE_URL", "https://api.cometchat.io/v3"),
		BotUID:           getEnvDefault("BOT_UID", "cryptoamy"),
		GcoinURL:         getEnvDefault("GCOIN_DASHBOARD_URL", "https://g.upvsdown.com/d/cefii4jb4kw74a/08-purchases?orgId=1&from=now-30d&to=now&timezone=utc&inspect=panel-121&inspectTab=data"),
		SnapshotFile:     getEnvDefault("GCOIN_SNAPSHOT_FILE", "data/gcoin_snapshot.json"),
		FaqFile:          getEnvDefault("FAQ_FILE", "data/faq.json"),
		SiteFile:         getEnvDefault("SITE_CONTENT_FILE", "data/site_content.json"),
		PersonaFile:      getEnvDefault("PERSONA_FILE", "prompts/persona.yaml"),
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("warning: OPENAI_API_KEY is not set; knowledge answers will fail until provided")
	}
	if cfg.CometChatAppID == "" || cfg.CometChatAPIKey == "" {
		log.Println("warning: CometChat credentials are not set; webhook replies cannot be delivered")
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
