package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation は PostgreSQL の一意制約違反のエラーコードです。
const pgUniqueViolation = "23505"

// isDuplicateKeyError は一意制約違反かどうかを判定します。
// TranslateError が無効な接続から来た pgconn.PgError もそのまま判定できます。
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
