package repository

import (
	"context"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain/entity"
)

// AuditRepository porto de escrita da trilha de auditoria.
type AuditRepository interface {
	Append(ctx context.Context, entry *entity.AuditEntry) error
}
