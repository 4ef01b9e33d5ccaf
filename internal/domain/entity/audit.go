package entity

import (
	"encoding/json"
	"time"
)

// AuditEntry registro best-effort de uma ação mutadora. A escrita da trilha
// nunca aborta a operação principal.
type AuditEntry struct {
	ID         int64
	UserID     *int64 // ator; nulo para ações de sistema
	Action     string // login, login_failed, account_locked, create, update, delete, sale
	Table      string
	RecordID   *int64
	OldData    json.RawMessage
	NewData    json.RawMessage
	OccurredAt time.Time
}
