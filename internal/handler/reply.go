package handler

import (
	"medinabot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// maxMessageLength is the telegram limit for a single text message
const maxMessageLength = 4096

// send delivers a reply, splitting long text. The keyboard is attached
// to the last chunk only.
func (h *Handler) send(c tele.Context, reply *domain.Reply) error {
	markup := buildMarkup(reply)
	chunks := splitMessage(reply.Text, maxMessageLength)

	for i, chunk := range chunks {
		var err error
		if i == len(chunks)-1 && markup != nil {
			err = c.Send(chunk, markup)
		} else {
			err = c.Send(chunk)
		}
		if err != nil {
			h.logger.Error("Failed to send reply",
				zap.Error(err),
				zap.Int("chunk", i),
				zap.Int("chunks", len(chunks)),
			)
			return err
		}
	}
	return nil
}

// buildMarkup converts reply buttons into telegram markup.
// A message carries one markup; inline buttons win over a reply keyboard.
func buildMarkup(reply *domain.Reply) *tele.ReplyMarkup {
	switch {
	case len(reply.Inline) > 0:
		markup := &tele.ReplyMarkup{}
		rows := make([]tele.Row, 0, len(reply.Inline))
		for _, buttons := range reply.Inline {
			row := make(tele.Row, 0, len(buttons))
			for _, b := range buttons {
				row = append(row, markup.Data(b.Label, b.Data))
			}
			rows = append(rows, row)
		}
		markup.Inline(rows...)
		return markup

	case len(reply.Keyboard) > 0:
		markup := &tele.ReplyMarkup{ResizeKeyboard: true}
		rows := make([]tele.Row, 0, len(reply.Keyboard))
		for _, labels := range reply.Keyboard {
			row := make(tele.Row, 0, len(labels))
			for _, label := range labels {
				row = append(row, markup.Text(label))
			}
			rows = append(rows, row)
		}
		markup.Reply(rows...)
		return markup
	}
	return nil
}

// splitMessage cuts text into chunks of at most limit runes,
// preferring to break after a newline in the second half of a chunk
func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
