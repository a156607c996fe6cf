package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging logs every update and any error returned by the handler
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()

			var userID int64
			if sender := c.Sender(); sender != nil {
				userID = sender.ID
			}

			err := next(c)

			fields := []zap.Field{
				zap.Int64("user_id", userID),
				zap.Int("update_id", c.Update().ID),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				logger.Error("Update handling failed", append(fields, zap.Error(err))...)
				return err
			}

			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}
