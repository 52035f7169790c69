package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/Image-Gallery/internal/entity"
	"github.com/andreyxaxa/Image-Gallery/pkg/postgres"
	"github.com/andreyxaxa/Image-Gallery/pkg/types/errs"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	imageMetadataTable = "image_metadata"

	// Columns
	imageNameColumn     = "image_name"
	fileSizeColumn      = "file_size"
	fileExtensionColumn = "file_extension"
	lastUpdateColumn    = "last_update"
)

type ImageMetadataRepo struct {
	*postgres.Postgres
}

func NewImageMetadataRepo(pg *postgres.Postgres) *ImageMetadataRepo {
	return &ImageMetadataRepo{pg}
}

// Create inserts a row, last_update is set by the database.
func (r *ImageMetadataRepo) Create(ctx context.Context, meta entity.ImageMetadata) error {
	sql, args, err := r.Builder.
		Insert(imageMetadataTable).
		Columns(
			imageNameColumn,
			fileSizeColumn,
			fileExtensionColumn,
		).
		Values(
			meta.Name,
			meta.SizeBytes,
			meta.Extension,
		).ToSql()
	if err != nil {
		return fmt.Errorf("ImageMetadataRepo - Create - r.Builder.ToSql: %w", err)
	}

	_, err = r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ImageMetadataRepo - Create - r.Pool.Exec: %w", err)
	}

	return nil
}

func (r *ImageMetadataRepo) GetByName(ctx context.Context, name string) (entity.ImageMetadata, error) {
	sql, args, err := r.selectMetadata().
		Where(squirrel.Eq{imageNameColumn: name}).
		ToSql()
	if err != nil {
		return entity.ImageMetadata{}, fmt.Errorf("ImageMetadataRepo - GetByName - r.Builder.ToSql: %w", err)
	}

	meta, err := scanMetadata(r.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ImageMetadata{}, fmt.Errorf("ImageMetadataRepo - GetByName: %w", errs.ErrRecordNotFound)
		}
		return entity.ImageMetadata{}, fmt.Errorf("ImageMetadataRepo - GetByName - r.Pool.QueryRow: %w", err)
	}

	return meta, nil
}

// GetRandom picks one row uniformly over the whole table.
func (r *ImageMetadataRepo) GetRandom(ctx context.Context) (entity.ImageMetadata, error) {
	sql, args, err := r.selectMetadata().
		OrderBy("random()").
		Limit(1).
		ToSql()
	if err != nil {
		return entity.ImageMetadata{}, fmt.Errorf("ImageMetadataRepo - GetRandom - r.Builder.ToSql: %w", err)
	}

	meta, err := scanMetadata(r.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ImageMetadata{}, fmt.Errorf("ImageMetadataRepo - GetRandom: %w", errs.ErrRecordNotFound)
		}
		return entity.ImageMetadata{}, fmt.Errorf("ImageMetadataRepo - GetRandom - r.Pool.QueryRow: %w", err)
	}

	return meta, nil
}

// List returns every row, most recently updated first.
func (r *ImageMetadataRepo) List(ctx context.Context) ([]entity.ImageMetadata, error) {
	sql, args, err := r.selectMetadata().
		OrderBy(lastUpdateColumn + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - List - r.Builder.ToSql: %w", err)
	}

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - List - r.Pool.Query: %w", err)
	}
	defer rows.Close()

	images := make([]entity.ImageMetadata, 0)

	for rows.Next() {
		meta, err := scanMetadata(rows)
		if err != nil {
			return nil, fmt.Errorf("ImageMetadataRepo - List - rows.Scan: %w", err)
		}

		images = append(images, meta)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ImageMetadataRepo - List - rows.Err: %w", err)
	}

	return images, nil
}

func (r *ImageMetadataRepo) Delete(ctx context.Context, name string) error {
	sql, args, err := r.Builder.
		Delete(imageMetadataTable).
		Where(squirrel.Eq{imageNameColumn: name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ImageMetadataRepo - Delete - r.Builder.ToSql: %w", err)
	}

	tag, err := r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ImageMetadataRepo - Delete - r.Pool.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ImageMetadataRepo - Delete: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *ImageMetadataRepo) selectMetadata() squirrel.SelectBuilder {
	return r.Builder.
		Select(
			imageNameColumn,
			fileSizeColumn,
			fileExtensionColumn,
			lastUpdateColumn,
		).
		From(imageMetadataTable)
}

func scanMetadata(row pgx.Row) (entity.ImageMetadata, error) {
	var meta entity.ImageMetadata

	err := row.Scan(
		&meta.Name,
		&meta.SizeBytes,
		&meta.Extension,
		&meta.LastUpdate,
	)

	return meta, err
}
