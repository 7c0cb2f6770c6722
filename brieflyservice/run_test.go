package brieflyservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/StronkOnes/BrieflyOS/internal/config"
)

func TestHTTPServerWriteTimeoutCoversArticlePipeline(t *testing.T) {
	cfg := config.NewForTesting(t.TempDir())
	cfg.CompletionTimeoutSeconds = 30

	srv := newHTTPServer(context.Background(), cfg, nil)

	// Article generation runs two sequential completions, each allowed the
	// full upstream timeout. A write deadline shorter than that sum drops
	// the connection mid-request even when both completions succeed.
	worstCase := 2 * time.Duration(cfg.CompletionTimeoutSeconds) * time.Second
	assert.Greater(t, srv.WriteTimeout, worstCase)
	assert.Equal(t, 70*time.Second, srv.WriteTimeout)
}

func TestHTTPServerAddrUsesConfiguredPort(t *testing.T) {
	cfg := config.NewForTesting(t.TempDir())
	cfg.HTTPPort = 5050

	srv := newHTTPServer(context.Background(), cfg, nil)
	assert.Equal(t, ":5050", srv.Addr)
}
