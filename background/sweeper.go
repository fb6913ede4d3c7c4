// Package background contains services that run independently of the HTTP
// request-response cycle.
package background

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sweepInterval is how often the sweeper looks for stale accounts.
const sweepInterval = 1 * time.Hour

// sweepSQL soft-deletes stale unconfirmed accounts together with their
// lists and those lists' tasks. The whole cascade runs as one statement so
// a swept username frees its seeded default list title atomically; an
// orphaned non-deleted list would otherwise block re-registration via the
// partial unique title index.
const sweepSQL = `
WITH stale AS (
	SELECT id FROM users
	WHERE confirmed = FALSE AND deleted_at IS NULL
	  AND created_at < now() - make_interval(secs => $1)
), swept_lists AS (
	UPDATE task_lists SET deleted_at = now(), updated_at = now()
	WHERE created_by IN (SELECT id FROM stale) AND deleted_at IS NULL
	RETURNING id
), swept_tasks AS (
	UPDATE tasks SET deleted_at = now(), updated_at = now()
	WHERE list_id IN (SELECT id FROM swept_lists) AND deleted_at IS NULL
)
UPDATE users SET deleted_at = now(), updated_at = now()
WHERE id IN (SELECT id FROM stale)`

// execer is the slice of pgxpool.Pool the sweeper needs.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// StartUnconfirmedSweeper launches a background worker that soft-deletes
// accounts still unconfirmed ttl after creation, along with their task
// lists and tasks. Rows are only ever soft-deleted; nothing is removed
// from storage. The worker stops when stopChan is closed and signals wg
// when it is fully done.
func StartUnconfirmedSweeper(dbPool *pgxpool.Pool, ttl time.Duration, stopChan <-chan struct{}, wg *sync.WaitGroup) {
	if ttl <= 0 {
		log.Println("Unconfirmed account sweeper disabled (CONFIRMATION_TTL is zero)")
		return
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer log.Println("Unconfirmed account sweeper stopped.")

		log.Printf("Unconfirmed account sweeper starting (ttl %s, every %s)", ttl, sweepInterval)

		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		// Sweep once at startup so a long-stopped process catches up
		// immediately instead of an hour later.
		sweepOnce(dbPool, ttl)

		for {
			select {
			case <-stopChan:
				return
			case <-ticker.C:
				sweepOnce(dbPool, ttl)
			}
		}
	}()
}

func sweepOnce(db execer, ttl time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tag, err := db.Exec(ctx, sweepSQL, ttl.Seconds())
	if err != nil {
		log.Printf("Unconfirmed account sweep failed: %v", err)
		return
	}
	if n := tag.RowsAffected(); n > 0 {
		log.Printf("Unconfirmed account sweep soft-deleted %d account(s)", n)
	}
}
