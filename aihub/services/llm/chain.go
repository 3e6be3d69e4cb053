// aihub/services/llm/chain.go
package llm

import (
	"context"
	"errors"
	"fmt"

	"aihub/aihub/utils/logging"

	"go.uber.org/zap"
)

// Chain tries each transport in order until one streams a full reply. A tier
// failure becomes one diagnostic chunk on the same callback, never an error:
// the caller observes a single continuous stream with exactly one completion,
// whichever tier ends up serving it.
type Chain struct {
	transports []Transport
}

func NewChain(transports ...Transport) *Chain {
	return &Chain{transports: transports}
}

func (c *Chain) Stream(ctx context.Context, req StreamRequest, onChunk func(string), onComplete func()) {
	defer onComplete()

	for i, t := range c.transports {
		err := t.Stream(ctx, req, onChunk)
		if err == nil {
			return
		}

		// An unconfigured tier is skipped quietly; the user only sees
		// diagnostics for tiers that were expected to work.
		if errors.Is(err, ErrNotConfigured) && i < len(c.transports)-1 {
			logging.AppLogger.Info("transport skipped", zap.String("transport", t.Name()))
			continue
		}

		logging.ErrorLogger.Error("transport failed",
			zap.String("transport", t.Name()),
			zap.String("agent_id", req.AgentID),
			zap.Error(err),
		)

		if i < len(c.transports)-1 {
			onChunk(fmt.Sprintf(
				"\n\n**System Alert:** %s transport unavailable (%v). Falling back.\n\n",
				t.Name(), err))
			continue
		}
		onChunk("\n\n**Error:** Unable to connect to the AI service. Please check your API key or network connection.")
	}
}
