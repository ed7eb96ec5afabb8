//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tos-api/internal/domain/tos"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestApplication(t *testing.T, db DBLike, namespace, appID string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO applications (namespace, appid) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		namespace, appID)
	require.NoError(t, err)
}

func CreateTestTermsOfService(t *testing.T, db DBLike, namespace, appID string, version float64) {
	t.Helper()

	CreateTestApplication(t, db, namespace, appID)
	_, err := db.Exec(context.Background(),
		"INSERT INTO terms_of_service (namespace, appid, tosversion) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
		namespace, appID, tos.FormatVersion(version))
	require.NoError(t, err)
}

func CreateTestResponse(t *testing.T, db DBLike, namespace string, r *tos.Response) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO tos_responses (id, namespace, appid, tosversion, userid, email, "timestamp", accepted)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, namespace, r.Document.AppID, r.Document.VersionName(), r.UserID, r.Email, r.Timestamp, r.Accepted)
	require.NoError(t, err)
}

func CountResponses(t *testing.T, db DBLike, namespace, userID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM tos_responses WHERE namespace = $1 AND userid = $2",
		namespace, userID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the probe application the status endpoint looks up
func SeedReferenceData(pool *pgxpool.Pool, namespace, probeAppID string) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		"INSERT INTO applications (namespace, appid) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		namespace, probeAppID)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool, namespace, probeAppID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool, namespace, probeAppID)
}
