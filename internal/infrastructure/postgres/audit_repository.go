package postgres

import (
	"context"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementação do porto AuditRepository sobre PostgreSQL.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository constrói o adaptador da trilha de auditoria.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Append insere um registro na trilha. O chamador (Recorder) decide o que
// fazer com o erro; aqui só se traduz a falha de escrita.
func (r *AuditRepo) Append(ctx context.Context, entry *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_log (usuario_id, acao, tabela, registro_id, dados_antigos, dados_novos, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		entry.UserID, entry.Action, entry.Table, entry.RecordID,
		entry.OldData, entry.NewData, entry.OccurredAt,
	)
	if err != nil {
		return domain.NewStorageError("insert audit", err)
	}
	return nil
}
