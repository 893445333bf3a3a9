package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Buttons are built without a registered unique, so the payload
	// arrives as "\f<data>" and needs the control prefix stripped
	in := inbound(c)
	in.Callback = cleanCallbackData(callback.Data)

	h.logger.Debug("Processing callback",
		zap.String("data", in.Callback),
		zap.String("id", callback.ID),
		zap.Int64("user_id", in.UserID),
	)

	reply := h.router.HandleCallback(h.ctx, in)

	// Always acknowledge so the client stops its spinner
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	if reply == nil {
		return nil
	}
	return h.send(c, reply)
}
