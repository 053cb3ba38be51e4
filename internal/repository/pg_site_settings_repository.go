package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nigeriagovhub/backend/internal/mapper"
	"github.com/nigeriagovhub/backend/internal/model"
)

// PgSiteSettingsRepository は SiteSettingsRepository の PostgreSQL 実装。
// sitesetting は固定 ID のシングルトン行。
type PgSiteSettingsRepository struct {
	pool *pgxpool.Pool
}

// NewPgSiteSettingsRepository は PgSiteSettingsRepository を生成する
func NewPgSiteSettingsRepository(pool *pgxpool.Pool) *PgSiteSettingsRepository {
	return &PgSiteSettingsRepository{pool: pool}
}

const siteSettingsSelectCols = `id, site_name, maintenance_mode, contact_email, footer_message, updated_at`

// Get はサイト設定行を取得する。行が存在しない場合は ErrNotFound
// （既定値へのフォールバックはサービス層の責務）。
func (r *PgSiteSettingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+siteSettingsSelectCols+` FROM sitesetting WHERE id = $1`,
		model.SiteSettingsID)

	var rec mapper.SiteSettingsRecord
	err := row.Scan(&rec.ID, &rec.SiteName, &rec.MaintenanceMode,
		&rec.ContactEmail, &rec.FooterMessage, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapper.SiteSettingsFromRecord(rec), nil
}

// Upsert はサイト設定を更新する。行が無ければ固定 ID で作成する。
func (r *PgSiteSettingsRepository) Upsert(ctx context.Context, patch model.SiteSettingsPatch) (*model.SiteSettings, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sitesetting (id, site_name, maintenance_mode, contact_email, footer_message, updated_at)
		 VALUES ($1, $2, COALESCE($3, FALSE), $4, $5, NOW())
		 ON CONFLICT (id) DO UPDATE SET
			site_name = COALESCE($2, sitesetting.site_name),
			maintenance_mode = COALESCE($3, sitesetting.maintenance_mode),
			contact_email = COALESCE($4, sitesetting.contact_email),
			footer_message = COALESCE($5, sitesetting.footer_message),
			updated_at = NOW()`,
		model.SiteSettingsID, patch.SiteName, patch.MaintenanceMode,
		patch.ContactEmail, patch.FooterMessage,
	)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
