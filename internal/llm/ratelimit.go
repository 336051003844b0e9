package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/karoldperez/clarofix/internal/tools"
)

// ThrottledGateway wraps a ModelGateway with a token-bucket rate limiter so
// a burst of support requests cannot exhaust the provider quota.
type ThrottledGateway struct {
	inner   ModelGateway
	limiter *rate.Limiter
}

var _ ModelGateway = (*ThrottledGateway)(nil)

// NewThrottledGateway limits inner to requestsPerMinute calls with the given
// burst. Waiting respects the caller's context deadline.
func NewThrottledGateway(inner ModelGateway, requestsPerMinute, burst int) *ThrottledGateway {
	perSecond := rate.Limit(float64(requestsPerMinute) / 60.0)
	return &ThrottledGateway{
		inner:   inner,
		limiter: rate.NewLimiter(perSecond, burst),
	}
}

func (g *ThrottledGateway) Generate(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait aborted: %w", err)
	}
	return g.inner.Generate(ctx, messages, config, availableTools)
}
