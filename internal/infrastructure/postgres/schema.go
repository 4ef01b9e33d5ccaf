package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ArthurSilvaNarciso/IntegrePlus-project/internal/domain"
)

// Statements DDL do schema normalizado. Executados na inicialização;
// idempotentes via IF NOT EXISTS.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		id                 BIGSERIAL PRIMARY KEY,
		username           TEXT NOT NULL UNIQUE,
		password_hash      TEXT NOT NULL,
		email              TEXT UNIQUE,
		role               TEXT NOT NULL DEFAULT 'Funcionario',
		failed_attempts    INTEGER NOT NULL DEFAULT 0 CHECK (failed_attempts >= 0),
		locked             BOOLEAN NOT NULL DEFAULT FALSE,
		last_login         TIMESTAMPTZ,
		reset_token        TEXT,
		reset_token_expiry TIMESTAMPTZ,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS produtos (
		id            BIGSERIAL PRIMARY KEY,
		nome          TEXT NOT NULL,
		quantidade    BIGINT NOT NULL CHECK (quantidade >= 0),
		preco         NUMERIC(12,2) NOT NULL CHECK (preco >= 0),
		validade      TIMESTAMPTZ NOT NULL,
		categoria     TEXT,
		codigo_barras TEXT UNIQUE,
		fornecedor_id BIGINT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS clientes (
		id         BIGSERIAL PRIMARY KEY,
		nome       TEXT NOT NULL,
		cpf        TEXT UNIQUE,
		email      TEXT UNIQUE,
		telefone   TEXT,
		endereco   TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS vendas (
		id              BIGSERIAL PRIMARY KEY,
		produto_id      BIGINT NOT NULL REFERENCES produtos(id) ON DELETE RESTRICT,
		quantidade      BIGINT NOT NULL CHECK (quantidade > 0),
		preco_unitario  NUMERIC(12,2) NOT NULL CHECK (preco_unitario >= 0),
		total           NUMERIC(12,2) NOT NULL CHECK (total >= 0),
		cliente_id      BIGINT REFERENCES clientes(id) ON DELETE SET NULL,
		forma_pagamento TEXT NOT NULL,
		occurred_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS audit_log (
		id          BIGSERIAL PRIMARY KEY,
		usuario_id  BIGINT REFERENCES usuarios(id) ON DELETE SET NULL,
		acao        TEXT NOT NULL,
		tabela      TEXT NOT NULL,
		registro_id BIGINT,
		dados_antigos JSONB,
		dados_novos   JSONB,
		occurred_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_produtos_nome ON produtos(nome)`,
	`CREATE INDEX IF NOT EXISTS idx_produtos_categoria ON produtos(categoria)`,
	`CREATE INDEX IF NOT EXISTS idx_vendas_occurred_at ON vendas(occurred_at)`,
	`CREATE INDEX IF NOT EXISTS idx_vendas_cliente ON vendas(cliente_id)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_log_usuario ON audit_log(usuario_id)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_log_occurred_at ON audit_log(occurred_at)`,
}

// EnsureSchema cria tabelas e índices que ainda não existam.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return domain.NewStorageError("ensure schema", err)
		}
	}
	return nil
}
