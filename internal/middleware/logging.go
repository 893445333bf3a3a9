package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging writes one debug line per update with its handling time
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Int("update_id", c.Update().ID),
				zap.Int64("user_id", senderID(c)),
				zap.Bool("callback", c.Callback() != nil),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				logger.Warn("Update handled with error", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}
