package handler

import (
	"context"

	"medinabot/internal/domain"
	"medinabot/internal/middleware"
	"medinabot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler adapts telegram updates to the message router
type Handler struct {
	ctx    context.Context
	bot    *tele.Bot
	router *service.Router
	logger *zap.Logger
}

// NewHandler creates a new handler instance.
// ctx bounds every routed update and is cancelled on shutdown.
func NewHandler(ctx context.Context, bot *tele.Bot, router *service.Router, logger *zap.Logger) *Handler {
	return &Handler{
		ctx:    ctx,
		bot:    bot,
		router: router,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(
		middleware.Recover(h.logger),
		middleware.Logging(h.logger),
	)

	// Commands share the text path so the router sees them in priority order
	h.bot.Handle("/start", h.handleText)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// handleText routes every text message
func (h *Handler) handleText(c tele.Context) error {
	reply := h.router.HandleText(h.ctx, inbound(c))
	if reply == nil {
		return nil
	}
	return h.send(c, reply)
}

func inbound(c tele.Context) domain.Inbound {
	in := domain.Inbound{Text: c.Text()}
	if sender := c.Sender(); sender != nil {
		in.UserID = sender.ID
		in.Username = sender.Username
	}
	return in
}
