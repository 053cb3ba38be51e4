package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nigeriagovhub/backend/internal/model"
)

// PgVerificationTokenRepository は VerificationTokenRepository の PostgreSQL 実装
type PgVerificationTokenRepository struct {
	pool *pgxpool.Pool
}

// NewPgVerificationTokenRepository は PgVerificationTokenRepository を生成する
func NewPgVerificationTokenRepository(pool *pgxpool.Pool) *PgVerificationTokenRepository {
	return &PgVerificationTokenRepository{pool: pool}
}

const tokenSelectCols = `id, email, token, expires`

func scanToken(scan func(...any) error) (*model.VerificationToken, error) {
	var t model.VerificationToken
	if err := scan(&t.ID, &t.Email, &t.Token, &t.Expires); err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByToken はトークン値でトークンを検索する。有効期限はここでは検査しない。
func (r *PgVerificationTokenRepository) FindByToken(ctx context.Context, token string) (*model.VerificationToken, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+tokenSelectCols+` FROM verificationtoken WHERE token = $1`, token)
	t, err := scanToken(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

// FindByEmail はメールアドレスでトークンを検索する。有効期限はここでは検査しない。
func (r *PgVerificationTokenRepository) FindByEmail(ctx context.Context, email string) (*model.VerificationToken, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+tokenSelectCols+` FROM verificationtoken WHERE email = $1`, email)
	t, err := scanToken(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

// Create はトークン行を作成する。トークン値の重複は ErrConflict。
func (r *PgVerificationTokenRepository) Create(ctx context.Context, email, token string, expires time.Time) (*model.VerificationToken, error) {
	t := &model.VerificationToken{
		ID:      uuid.NewString(),
		Email:   email,
		Token:   token,
		Expires: expires,
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO verificationtoken (id, email, token, expires) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Email, t.Token, t.Expires,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return t, nil
}

// DeleteByID は ID でトークン行を削除する
func (r *PgVerificationTokenRepository) DeleteByID(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM verificationtoken WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByEmail はメールアドレスに紐づくトークンを全て削除する（存在しなくてもエラーにしない）
func (r *PgVerificationTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM verificationtoken WHERE email = $1`, email)
	return err
}
