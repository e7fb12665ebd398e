// Package prompt implements the prompt history store using PostgreSQL.
// Queries are built with squirrel; the schema lives in migrations/.
package prompt

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/promptcraft-backend/internal/adapter/postgres"
	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

const table = "prompts"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "user_id", "original_prompt", "rewritten_prompt", "tone", "type", "is_favorite", "created_at",
	"word_count_original", "word_count_rewritten", "processing_time_ms", "model", "api_cost",
}

var sortColumns = map[domain.SortField]string{
	domain.SortByCreatedAt:       "created_at",
	domain.SortByOriginalPrompt:  "original_prompt",
	domain.SortByRewrittenPrompt: "rewritten_prompt",
	domain.SortByTone:            "tone",
	domain.SortByType:            "type",
	domain.SortByIsFavorite:      "is_favorite",
	domain.SortByUserID:          "user_id",
	domain.SortByProcessingTime:  "processing_time_ms",
	domain.SortByAPICost:         "api_cost",
	domain.SortByModel:           "model",
}

// Repo provides prompt persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new prompt repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Ping checks connectivity when the underlying querier supports it.
func (r *Repo) Ping(ctx context.Context) error {
	if p, ok := r.q.(postgres.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Create inserts rec with a new UUID and returns the stored row.
func (r *Repo) Create(ctx context.Context, rec domain.PromptRecord) (domain.PromptRecord, error) {
	rec.RecountWords()
	id := uuid.New()

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			id, rec.UserID, rec.OriginalPrompt, rec.RewrittenPrompt, string(rec.Tone), string(rec.Type),
			rec.IsFavorite, rec.CreatedAt.UTC(),
			rec.Metadata.WordCount.Original, rec.Metadata.WordCount.Rewritten,
			rec.Metadata.ProcessingTime, rec.Metadata.Model, rec.Metadata.APICost,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.PromptRecord{}, fmt.Errorf("build insert prompt: %w", err)
	}

	out, err := scanPrompt(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.PromptRecord{}, postgres.MapError(err, "prompt", id.String())
	}
	return out, nil
}

// List returns one page of a user's matching records and the total match count.
func (r *Repo) List(ctx context.Context, userID string, filter domain.HistoryFilter, page domain.Page, sort domain.Sort) ([]domain.PromptRecord, int64, error) {
	where := buildWhere(userID, filter)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count prompts: %w", err)
	}

	var total int64
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count prompts: %w", err)
	}

	query, args, err := psql.Select(columns...).
		From(table).
		Where(where).
		OrderBy(orderBy(sort)...).
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Skip())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list prompts: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PromptRecord, 0, page.Limit)
	for rows.Next() {
		rec, err := scanPrompt(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan prompt: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list prompts: %w", err)
	}

	return out, total, nil
}

// Delete removes the row with id, restricted to ownerID when it is set.
// A malformed id matches nothing.
func (r *Repo) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	pk, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	query, args, err := psql.Delete(table).Where(byID(pk, ownerID)).ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete prompt: %w", err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "prompt", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ToggleFavorite flips is_favorite in a single UPDATE and returns the new row.
func (r *Repo) ToggleFavorite(ctx context.Context, id, ownerID string) (domain.PromptRecord, error) {
	pk, err := uuid.Parse(id)
	if err != nil {
		return domain.PromptRecord{}, fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}

	query, args, err := psql.Update(table).
		Set("is_favorite", sq.Expr("NOT is_favorite")).
		Where(byID(pk, ownerID)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.PromptRecord{}, fmt.Errorf("build toggle favorite: %w", err)
	}

	rec, err := scanPrompt(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.PromptRecord{}, postgres.MapError(err, "prompt", id)
	}
	return rec, nil
}

// UserStats aggregates a user's rows. The most used tone and type are those
// of the oldest row, matching the document store's $first semantics.
func (r *Repo) UserStats(ctx context.Context, userID string) (domain.UserStats, error) {
	query, args, err := psql.Select(
		"count(*)",
		"count(*) FILTER (WHERE is_favorite)",
		"coalesce((array_agg(tone ORDER BY created_at, id))[1], '')",
		"coalesce((array_agg(type ORDER BY created_at, id))[1], '')",
		"coalesce(avg(processing_time_ms), 0)::float8",
		"coalesce(sum(api_cost), 0)::float8",
	).From(table).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("build user stats: %w", err)
	}

	var (
		st        domain.UserStats
		tone, typ string
	)
	err = r.q.QueryRow(ctx, query, args...).Scan(
		&st.TotalPrompts, &st.FavoritePrompts, &tone, &typ, &st.AvgProcessingTime, &st.TotalAPICost,
	)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("user stats: %w", err)
	}
	st.MostUsedTone = domain.Tone(tone)
	st.MostUsedType = domain.PromptType(typ)
	return st, nil
}

// Popularity counts tones and types across all users.
func (r *Repo) Popularity(ctx context.Context) (domain.Popularity, error) {
	tones, err := r.countBy(ctx, "tone")
	if err != nil {
		return domain.Popularity{}, err
	}
	types, err := r.countBy(ctx, "type")
	if err != nil {
		return domain.Popularity{}, err
	}
	return domain.Popularity{ToneStats: tones, TypeStats: types}, nil
}

func (r *Repo) countBy(ctx context.Context, column string) ([]domain.CategoryCount, error) {
	query, args, err := psql.Select(column, "count(*) AS n").
		From(table).
		GroupBy(column).
		OrderBy("n DESC", column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by %s: %w", column, err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}
	defer rows.Close()

	out := []domain.CategoryCount{}
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Value, &c.Count); err != nil {
			return nil, fmt.Errorf("scan count by %s: %w", column, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func buildWhere(userID string, f domain.HistoryFilter) sq.And {
	where := sq.And{sq.Eq{"user_id": userID}}
	if f.FavoritesOnly {
		where = append(where, sq.Eq{"is_favorite": true})
	}
	if f.Type != nil {
		where = append(where, sq.Eq{"type": string(*f.Type)})
	}
	if f.Tone != nil {
		where = append(where, sq.Eq{"tone": string(*f.Tone)})
	}
	if f.Search != nil {
		pattern := "%" + escapeLike(*f.Search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"original_prompt": pattern},
			sq.ILike{"rewritten_prompt": pattern},
		})
	}
	return where
}

func orderBy(s domain.Sort) []string {
	col, ok := sortColumns[s.By]
	if !ok {
		col = sortColumns[domain.SortByCreatedAt]
	}
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	return []string{col + " " + dir, "id " + dir}
}

func byID(id uuid.UUID, ownerID string) sq.Sqlizer {
	if ownerID == "" {
		return sq.Eq{"id": id}
	}
	return sq.Eq{"id": id, "user_id": ownerID}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanPrompt(row pgx.Row) (domain.PromptRecord, error) {
	var (
		rec       domain.PromptRecord
		id        uuid.UUID
		tone, typ string
		createdAt time.Time
	)
	err := row.Scan(
		&id, &rec.UserID, &rec.OriginalPrompt, &rec.RewrittenPrompt, &tone, &typ, &rec.IsFavorite, &createdAt,
		&rec.Metadata.WordCount.Original, &rec.Metadata.WordCount.Rewritten,
		&rec.Metadata.ProcessingTime, &rec.Metadata.Model, &rec.Metadata.APICost,
	)
	if err != nil {
		return domain.PromptRecord{}, err
	}
	rec.ID = id.String()
	rec.Tone = domain.Tone(tone)
	rec.Type = domain.PromptType(typ)
	rec.CreatedAt = createdAt.UTC()
	return rec, nil
}
