package terminal

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, cmd command) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, cmd command) error {
		if err := fn(ctx, cmd); err != nil {
			h.logger.Error("handle error",
				zap.String("command", cmd.Raw),
				zap.Error(err),
			)
			h.sendError(h.msgs().internalError)
			return nil
		}
		return nil
	}
}
