package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelperfect/backend/internal/domain/video"
	"github.com/pixelperfect/backend/pkg/apperror"
	"github.com/pixelperfect/backend/pkg/logger"
)

type postgresVideoRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresVideoRepo(db *pgxpool.Pool, logger logger.Logger) video.Repository {
	return &postgresVideoRepo{db: db, logger: logger}
}

var psqlVideo = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func scanVideo(row pgx.Row) (*video.Video, error) {
	v := &video.Video{}

	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.PublicID,
		&v.OriginalSize, &v.CompressedSize, &v.Duration, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("video", "")
		}
		return nil, apperror.NewInternal("failed to scan video row", err)
	}
	return v, nil
}

func scanVideos(rows pgx.Rows) ([]*video.Video, error) {
	defer rows.Close()
	videos := make([]*video.Video, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating video rows", err)
	}
	return videos, nil
}

func (r *postgresVideoRepo) Save(ctx context.Context, v *video.Video) error {
	query := `
		INSERT INTO videos (id, owner_id, title, description, public_id, original_size, compressed_size, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		v.ID, v.OwnerID, v.Title, v.Description, v.PublicID,
		v.OriginalSize, v.CompressedSize, v.Duration, v.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert video", err)
	}
	return nil
}

func (r *postgresVideoRepo) ListAll(ctx context.Context) ([]*video.Video, error) {
	builder := psqlVideo.Select(
		"id", "owner_id", "title", "description", "public_id",
		"original_size", "compressed_size", "duration", "created_at",
	).
		From("videos").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list videos query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query videos", err)
	}
	return scanVideos(rows)
}
