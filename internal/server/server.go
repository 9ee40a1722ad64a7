package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	openai "github.com/sashabaranov/go-openai"

	"cryptoamy-backend/internal/cometchat"
	"cryptoamy-backend/internal/config"
	"cryptoamy-backend/internal/content"
	"cryptoamy-backend/internal/gcoin"
	"cryptoamy-backend/internal/intent"
	"cryptoamy-backend/internal/knowledge"
	"cryptoamy-backend/internal/types"
)

// notSureReply is what /ask answers when the resolver has nothing. The
// webhook path deliberately stays silent instead of posting this into chats.
const notSureReply = "ℹ️ I'm not sure about that, but you can find answers at https://playw3.com or contact support!"

// StatReporter produces the G Coin stat report text.
type StatReporter interface {
	Report(ctx context.Context) string
}

// Resolver answers knowledge questions; "" means no answer.
type Resolver interface {
	Resolve(ctx context.Context, message string) string
}

// Deliverer sends an outbound chat-platform message.
type Deliverer interface {
	SendText(ctx context.Context, receiver, receiverType, text string) error
}

type Server struct {
	router   *chi.Mux
	cfg      config.Config
	stats    StatReporter
	resolver Resolver
	delivery Deliverer
}

func NewServer(cfg config.Config) (*Server, error) {
	spec, err := knowledge.LoadSpec(cfg.PersonaFile)
	if err != nil {
		return nil, err
	}
	store := content.Load(cfg.FaqFile, cfg.SiteFile)
	client := openai.NewClient(cfg.OpenAIAPIKey)

	s := &Server{
		cfg:      cfg,
		stats:    gcoin.NewFetcher(cfg.GcoinURL, cfg.SnapshotFile),
		resolver: knowledge.NewResolver(spec, store, client, cfg.Model),
		delivery: cometchat.NewClient(cfg.CometChatBaseURL, cfg.CometChatAppID, cfg.CometChatAPIKey),
	}
	s.buildRouter()
	return s, nil
}

// NewServerWith wires explicit collaborators; used by tests.
func NewServerWith(cfg config.Config, stats StatReporter, resolver Resolver, delivery Deliverer) *Server {
	s := &Server{cfg: cfg, stats: stats, resolver: resolver, delivery: delivery}
	s.buildRouter()
	return s
}

func (s *Server) buildRouter() {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With", "Origin"},
		MaxAge:         300,
	}))
	r.Get("/api/health", s.handleHealth)
	r.Post("/ask", s.handleAsk)
	r.Post("/webhook", s.handleWebhook)
	s.router = r
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// reply runs the classify → stat/knowledge pipeline shared by both endpoints.
// An empty result means the knowledge path had nothing.
func (s *Server) reply(ctx context.Context, message string) string {
	if intent.Detect(message) == intent.KindStat {
		return s.stats.Report(ctx)
	}
	return s.resolver.Resolve(ctx, message)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req types.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	reply := s.reply(r.Context(), req.Message)
	if reply == "" {
		reply = notSureReply
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(types.AskResponse{Response: reply})
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var event types.WebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	data := event.Data
	// Skip empty events and our own messages so the bot never answers itself.
	if data.Message == "" || data.Sender.UID == s.cfg.BotUID {
		w.WriteHeader(http.StatusOK)
		return
	}

	reply := s.reply(r.Context(), data.Message)
	if reply == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if data.ReceiverType == "group" {
		name := data.Sender.Name
		if name == "" {
			name = "user"
		}
		reply = "@" + name + " " + reply
	}

	if err := s.delivery.SendText(r.Context(), data.Receiver, data.ReceiverType, reply); err != nil {
		log.Println("[webhook] send error:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg})
}
