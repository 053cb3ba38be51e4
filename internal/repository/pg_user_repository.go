package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nigeriagovhub/backend/internal/mapper"
	"github.com/nigeriagovhub/backend/internal/model"
)

// PgUserRepository は UserRepository の PostgreSQL 実装
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository は PgUserRepository を生成する
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

// Ping は DB 接続を確認する（DB インターフェース実装）
func (r *PgUserRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

const userSelectCols = `id, name, email, email_verified, image, role, password, created_at`

func scanUserRecord(scan func(...any) error) (mapper.UserRecord, error) {
	var rec mapper.UserRecord
	err := scan(&rec.ID, &rec.Name, &rec.Email, &rec.EmailVerified,
		&rec.Image, &rec.Role, &rec.PasswordHash, &rec.CreatedAt)
	return rec, err
}

// FindByID は ID でユーザーを取得する
func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE id = $1`, id)
	rec, err := scanUserRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapper.UserFromRecord(rec), nil
}

// FindByEmail はメールアドレスでユーザーを取得する
func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE email = $1`, email)
	rec, err := scanUserRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapper.UserFromRecord(rec), nil
}

// FindFullByEmail はパスワードハッシュ込みのユーザーレコードを取得する（認証フロー専用）
func (r *PgUserRepository) FindFullByEmail(ctx context.Context, email string) (*model.FullUser, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE email = $1`, email)
	rec, err := scanUserRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapper.FullUserFromRecord(rec), nil
}

// List はユーザー一覧を登録の新しい順で返す
func (r *PgUserRepository) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userSelectCols+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		rec, err := scanUserRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, mapper.UserFromRecord(rec))
	}
	return users, rows.Err()
}

// Create は資格情報ベースのユーザーを作成する。
// メールアドレスの一意制約違反は ErrConflict を返す。
func (r *PgUserRepository) Create(ctx context.Context, params CreateUserParams) (*model.User, error) {
	id := uuid.NewString()
	now := time.Now()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, role, password, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, params.Name, params.Email, string(params.Role), params.PasswordHash, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// UpdateName は表示名を更新する
func (r *PgUserRepository) UpdateName(ctx context.Context, id, name string) (*model.User, error) {
	ct, err := r.pool.Exec(ctx,
		`UPDATE users SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// SetEmailVerified はメール確認完了の印を打刻する
func (r *PgUserRepository) SetEmailVerified(ctx context.Context, email string, verifiedAt time.Time) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE users SET email_verified = $1 WHERE email = $2`, verifiedAt, email)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete はユーザーと依存行を削除する。
// コメント・いいね・ブックマーク・外部認証の account / session 行は削除し、
// フィードバックは削除せず user_id を null 化して公開履歴を残す。
// 全体を単一トランザクションで実行する。
func (r *PgUserRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, q := range []string{
		`DELETE FROM newscomment WHERE user_id = $1`,
		`DELETE FROM newslike WHERE user_id = $1`,
		`DELETE FROM bookmarkednewsarticle WHERE user_id = $1`,
		`DELETE FROM bookmarkedproject WHERE user_id = $1`,
		`DELETE FROM account WHERE user_id = $1`,
		`DELETE FROM session WHERE user_id = $1`,
		`UPDATE feedback SET user_id = NULL WHERE user_id = $1`,
	} {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}

	ct, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
