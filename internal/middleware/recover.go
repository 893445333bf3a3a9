package middleware

import (
	"runtime/debug"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover catches panics in handlers so one failing update never stops the bot
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered",
						zap.Any("panic", r),
						zap.Int64("user_id", senderID(c)),
						zap.String("stack", string(debug.Stack())),
					)
					err = nil
				}
			}()
			return next(c)
		}
	}
}

func senderID(c tele.Context) int64 {
	if sender := c.Sender(); sender != nil {
		return sender.ID
	}
	return 0
}
