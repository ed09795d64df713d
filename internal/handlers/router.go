package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_vocab_srs/internal/config"
	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/webutil"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers はルーターに登録するハンドラ一式です。
type Handlers struct {
	Tenant    *TenantHandler
	Deck      *DeckHandler
	Flashcard *FlashcardHandler
	Review    *ReviewHandler

	// Ping は /health で呼ばれる疎通確認です。nil の場合は常に ok を返します。
	Ping func(ctx context.Context) error
}

// NewRouter はミドルウェアとルートを設定した chi ルーターを返します。
// auth.enabled が false の場合は X-Tenant-ID ヘッダーでテナントを決めます (開発用)。
func NewRouter(cfg *config.Config, logger *slog.Logger, h Handlers, authenticator middleware.TenantAuthenticator) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if h.Ping != nil {
			if err := h.Ping(r.Context()); err != nil {
				middleware.GetLogger(r.Context()).Error("Health check failed", slog.Any("error", err))
				webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}, logger)
				return
			}
		}
		webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	})

	limiter := middleware.NewTenantRateLimiter(cfg.App.ReviewRateLimit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/tenants", h.Tenant.CreateTenant)

		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				r.Use(middleware.JWTAuthMiddleware(cfg, authenticator))
			} else {
				logger.Warn("Authentication is disabled. X-Tenant-ID header is trusted as-is.")
				r.Use(middleware.DevTenantContextMiddleware)
			}

			r.Route("/decks", func(r chi.Router) {
				r.Get("/", h.Deck.ListDecks)
				r.Post("/", h.Deck.CreateDeck)
				r.Route("/{deck_id}", func(r chi.Router) {
					r.Get("/", h.Deck.GetDeck)
					r.Put("/", h.Deck.UpdateDeck)
					r.Delete("/", h.Deck.DeleteDeck)
				})
			})

			r.Route("/flashcards", func(r chi.Router) {
				r.Get("/", h.Flashcard.ListFlashcards)
				r.Post("/", h.Flashcard.CreateFlashcard)
				r.Route("/{card_id}", func(r chi.Router) {
					r.Get("/", h.Flashcard.GetFlashcard)
					r.Put("/", h.Flashcard.PutFlashcard)
					r.Patch("/", h.Flashcard.PatchFlashcard)
					r.Delete("/", h.Flashcard.DeleteFlashcard)
					r.Post("/reset", h.Flashcard.ResetReview)
				})
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.Review.GetDueCards)
				r.Get("/count", h.Review.CountDueCards)
				r.With(limiter.Middleware).Post("/{card_id}", h.Review.SubmitReview)
			})
		})
	})

	return r
}
