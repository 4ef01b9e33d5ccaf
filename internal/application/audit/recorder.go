// Package audit grava a trilha de auditoria de ações mutadoras.
// A escrita é best-effort: falhas são registradas no log e engolidas,
// nunca abortam nem revertem a operação principal.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/repository"
	"github.com/ArthurSilvaNarciso/IntegrePlus-project/pkg/logger"
)

// Recorder escreve entradas de auditoria através do AuditRepository.
type Recorder struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewRecorder constrói o recorder.
func NewRecorder(repo repository.AuditRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record anexa uma entrada à trilha. before/after são serializados como JSON;
// valores que não serializam viram nulos. Nenhum erro é devolvido ao chamador.
func (r *Recorder) Record(ctx context.Context, actor *int64, action, table string, recordID *int64, before, after any) {
	if r == nil || r.repo == nil {
		return
	}
	entry := &entity.AuditEntry{
		UserID:     actor,
		Action:     action,
		Table:      table,
		RecordID:   recordID,
		OldData:    marshal(before),
		NewData:    marshal(after),
		OccurredAt: time.Now(),
	}
	if err := r.repo.Append(ctx, entry); err != nil {
		r.log.Error().Err(err).
			Str("action", action).
			Str("table", table).
			Msg("falha ao gravar auditoria")
	}
}

func marshal(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
