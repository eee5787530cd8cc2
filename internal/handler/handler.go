package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/goodfaith/exteriors-backend/internal/domain/catalog"
	"github.com/goodfaith/exteriors-backend/internal/domain/events"
	"github.com/goodfaith/exteriors-backend/internal/domain/leads"
	"github.com/goodfaith/exteriors-backend/internal/domain/quotes"
	"github.com/goodfaith/exteriors-backend/internal/infra/ai"
	"github.com/goodfaith/exteriors-backend/internal/infra/notify"
	"github.com/goodfaith/exteriors-backend/internal/pricing"
)

// LeadStore is the lead persistence the handlers need.
type LeadStore interface {
	Create(ctx context.Context, l leads.Lead) (*leads.Lead, error)
	Get(ctx context.Context, id int64) (*leads.Lead, error)
	Update(ctx context.Context, l leads.Lead) (*leads.Lead, error)
	Search(ctx context.Context, f leads.SearchFilter) ([]leads.Lead, error)
}

// QuoteStore is the quote persistence the handlers need.
type QuoteStore interface {
	Create(ctx context.Context, q quotes.Quote) (*quotes.Quote, error)
	Get(ctx context.Context, quoteID string) (*quotes.Quote, error)
	UpdateStatus(ctx context.Context, quoteID string, next quotes.Status) (*quotes.Quote, error)
	ListByLead(ctx context.Context, leadID int64) ([]quotes.Quote, error)
}

// CatalogStore lists the product catalog data.
type CatalogStore interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	ListBrands(ctx context.Context) ([]catalog.Brand, error)
	ListWindowTypes(ctx context.Context) ([]catalog.WindowType, error)
}

// EventLog appends and lists analytics events; Record never fails the
// caller.
type EventLog interface {
	Record(ctx context.Context, eventType, endpoint string, details map[string]any)
	Recent(ctx context.Context, limit int) ([]events.Event, error)
}

// AIBroker is the opaque AI collaborator.
type AIBroker interface {
	AnalyzeWindowImage(ctx context.Context, imageData string) (*ai.WindowAnalysis, error)
	Chat(ctx context.Context, userMessage string, history []ai.ChatTurn) (string, error)
	RecommendProducts(ctx context.Context, analysis *ai.WindowAnalysis, preferences string) ([]ai.Recommendation, error)
}

// Handler wires the API surface: pricing pipeline, leads, quotes,
// catalog, AI broker and the estimate exporter.
type Handler struct {
	log      *slog.Logger
	resolver *pricing.Resolver
	leads    LeadStore
	quotes   QuoteStore
	catalog  CatalogStore
	events   EventLog
	ai       AIBroker
	notifier *notify.Notifier
}

func New(log *slog.Logger, resolver *pricing.Resolver,
	leadStore LeadStore, quoteStore QuoteStore, catalogStore CatalogStore,
	events EventLog, broker AIBroker, notifier *notify.Notifier) *Handler {

	return &Handler{
		log: log, resolver: resolver,
		leads: leadStore, quotes: quoteStore, catalog: catalogStore,
		events: events, ai: broker, notifier: notifier,
	}
}

// Routes mounts the API under one router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/pricing", func(r chi.Router) {
		r.Post("/calculate", h.calculatePricing)
		r.Post("/compare-tiers", h.compareTiers)
		r.Post("/quick-estimate", h.quickEstimate)
		r.Get("/multipliers", h.getMultipliers)
		r.Post("/financing", h.financingOptions)
		r.Post("/export", h.exportEstimate)
	})

	r.Route("/leads", func(r chi.Router) {
		r.Post("/", h.createLead)
		r.Get("/{id}", h.getLead)
		r.Put("/{id}", h.updateLead)
		r.Post("/search", h.searchLeads)
		r.Get("/{id}/quotes", h.listLeadQuotes)
	})

	r.Route("/quotes", func(r chi.Router) {
		r.Post("/", h.createQuote)
		r.Get("/{quoteID}", h.getQuote)
		r.Put("/{quoteID}/status", h.updateQuoteStatus)
	})

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/brands", h.listBrands)
		r.Get("/types", h.listWindowTypes)
	})

	r.Get("/events", h.recentEvents)

	r.Route("/ai", func(r chi.Router) {
		r.Post("/analyze-image", h.analyzeImage)
		r.Post("/chat", h.aiChat)
		r.Post("/recommendations", h.recommendations)
	})

	return r
}
