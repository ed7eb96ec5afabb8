package db

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"tos-api/internal/domain/tos"
	"tos-api/internal/infra"
	"tos-api/internal/infra/datastore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Queries implements datastore.Queries on PostgreSQL.
type Queries struct {
	db     DBTX
	logger *slog.Logger
}

var _ datastore.Queries = (*Queries)(nil)

func NewQueries(db DBTX, logger *slog.Logger) *Queries {
	return &Queries{db: db, logger: logger}
}

const lookupApplicationSQL = `
SELECT appid
FROM applications
WHERE namespace = $1 AND appid = $2`

func (q *Queries) LookupApplication(ctx context.Context, namespace, appID string) ([]tos.Application, error) {
	rows, err := q.db.Query(ctx, lookupApplicationSQL, namespace, appID)
	if err != nil {
		return nil, infra.WrapRepoErr(q.logger, infra.KindDBFailure, "failed to look up application", err)
	}
	apps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (tos.Application, error) {
		var app tos.Application
		err := row.Scan(&app.AppID)
		return app, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(q.logger, infra.KindDBFailure, "failed to scan application", err)
	}
	return apps, nil
}

const lookupTermsOfServiceSQL = `
SELECT appid, tosversion
FROM terms_of_service
WHERE namespace = $1 AND appid = $2 AND tosversion = $3`

func (q *Queries) LookupTermsOfService(ctx context.Context, namespace string, doc tos.DocumentKey) ([]tos.TermsOfService, error) {
	rows, err := q.db.Query(ctx, lookupTermsOfServiceSQL, namespace, doc.AppID, doc.VersionName())
	if err != nil {
		return nil, infra.WrapRepoErr(q.logger, infra.KindDBFailure, "failed to look up terms of service", err)
	}
	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (tos.TermsOfService, error) {
		var (
			t       tos.TermsOfService
			version string
		)
		if err := row.Scan(&t.AppID, &version); err != nil {
			return t, err
		}
		v, err := strconv.ParseFloat(version, 64)
		t.Version = v
		return t, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(q.logger, infra.KindDBFailure, "failed to scan terms of service", err)
	}
	return docs, nil
}

const queryResponsesSQL = `
SELECT id, userid, email, "timestamp", accepted
FROM tos_responses
WHERE namespace = $1 AND appid = $2 AND tosversion = $3 AND userid = $4
ORDER BY "timestamp" DESC, seq DESC
LIMIT $5`

func (q *Queries) QueryResponses(ctx context.Context, namespace string, query datastore.ResponseQuery) ([]tos.Response, error) {
	doc := query.Ancestor
	rows, err := q.db.Query(ctx, queryResponsesSQL,
		namespace, doc.AppID, doc.VersionName(), query.UserID, query.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr(q.logger, infra.KindDBFailure, "failed to query responses", err)
	}
	responses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (tos.Response, error) {
		r := tos.Response{Document: doc}
		var id uuid.UUID
		err := row.Scan(&id, &r.UserID, &r.Email, &r.Timestamp, &r.Accepted)
		r.ID = id
		r.Timestamp = r.Timestamp.UTC()
		return r, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(q.logger, infra.KindDBFailure, "failed to scan responses", err)
	}
	return responses, nil
}

const insertResponseSQL = `
INSERT INTO tos_responses (id, namespace, appid, tosversion, userid, email, "timestamp", accepted)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) InsertResponse(ctx context.Context, namespace string, r *tos.Response) error {
	_, err := q.db.Exec(ctx, insertResponseSQL,
		r.ID, namespace, r.Document.AppID, r.Document.VersionName(),
		r.UserID, r.Email, r.Timestamp, r.Accepted)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation:
				return infra.WrapRepoErr(q.logger, infra.KindForeignKeyViolated, "response ancestor missing", err)
			case pgUniqueViolation:
				return infra.WrapRepoErr(q.logger, infra.KindDuplicateKey, "response key already exists", err)
			}
		}
		return infra.WrapRepoErr(q.logger, infra.KindDBFailure, "failed to insert response", err)
	}
	return nil
}
