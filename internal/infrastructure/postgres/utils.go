package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
)

// isUniqueViolation verifica se o erro é violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica violação de chave estrangeira (23503),
// usada para traduzir o RESTRICT de vendas→produtos em conflito de negócio.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

// uniqueField extrai o campo ofensor a partir do nome da constraint
// (ex.: usuarios_username_key -> username). Vazio quando desconhecido.
func uniqueField(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	name := pgErr.ConstraintName
	for _, f := range []string{"username", "email", "cpf", "codigo_barras"} {
		if strings.Contains(name, f) {
			return f
		}
	}
	return ""
}

// translateWriteError converte erros de escrita em erros de domínio:
// 23505 -> ErrDuplicate (com o campo nomeado), 23503 -> ErrConflict,
// resto -> StorageError com a forma da operação.
func translateWriteError(op string, err error) error {
	if isUniqueViolation(err) {
		if f := uniqueField(err); f != "" {
			return fmt.Errorf("%s: %w", f, domain.ErrDuplicate)
		}
		return domain.ErrDuplicate
	}
	if isForeignKeyViolation(err) {
		return domain.ErrConflict
	}
	return domain.NewStorageError(op, err)
}
