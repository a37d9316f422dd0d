package postgres

import (
	"context"

	"agadev/internal/domain/repository"
	"agadev/internal/errors"

	"gorm.io/gorm"
)

// contentStatsQuery is portable between PostgreSQL and sqlite.
const contentStatsQuery = `SELECT
	COUNT(*) AS total,
	COALESCE(SUM(CASE WHEN published THEN 1 ELSE 0 END), 0) AS published,
	COALESCE(SUM(CASE WHEN COALESCE(cover_image_url, '') <> '' THEN 1 ELSE 0 END), 0) AS with_cover
FROM `

const missingCoverCondition = "cover_image_url IS NULL OR cover_image_url = ''"

func contentStats(ctx context.Context, db *gorm.DB, table string) (repository.ContentStats, error) {
	var row struct {
		Total     int64
		Published int64
		WithCover int64
	}
	if err := db.WithContext(ctx).Raw(contentStatsQuery + table).Scan(&row).Error; err != nil {
		return repository.ContentStats{}, errors.Wrapf(err, "failed to compute %s stats", table)
	}

	return repository.ContentStats{
		Total:        row.Total,
		Published:    row.Published,
		WithCover:    row.WithCover,
		WithoutCover: row.Total - row.WithCover,
	}, nil
}
