package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunPruner deletes rounds older than maxAge every interval until ctx is
// done. Rounds that old are past their session cookie's expiry, so no
// player can reach them again.
func RunPruner(ctx context.Context, st Store, interval, maxAge time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		PruneOnce(ctx, st, maxAge, time.Now())
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

// PruneOnce deletes rounds created more than maxAge before now.
func PruneOnce(ctx context.Context, st Store, maxAge time.Duration, now time.Time) int64 {
	n, err := st.DeleteBefore(ctx, now.Add(-maxAge))
	if err != nil {
		log.Warn().Err(err).Msg("prune rounds")
		return 0
	}
	if n > 0 {
		log.Info().Int64("rounds", n).Msg("pruned expired rounds")
	}
	return n
}
