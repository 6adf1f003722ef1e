package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// DDL idempotente executado no boot. A ordem importa: users antes de
// patrimonies (FK created_by) e patrimonies antes de transfers (FK cascade).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		company_name VARCHAR NOT NULL,
		department VARCHAR NOT NULL,
		username VARCHAR NOT NULL UNIQUE,
		password_hash VARCHAR NOT NULL,
		email VARCHAR,
		role VARCHAR NOT NULL DEFAULT 'user',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS patrimonies (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		plate VARCHAR NOT NULL UNIQUE,
		name VARCHAR NOT NULL,
		description TEXT,
		acquisition_date DATE,
		value DECIMAL(10, 2),
		department VARCHAR NOT NULL,
		status VARCHAR NOT NULL DEFAULT 'active',
		invoice_number VARCHAR,
		commitment_number VARCHAR,
		denf_se_number VARCHAR,
		invoice_file VARCHAR,
		commitment_file VARCHAR,
		denf_se_file VARCHAR,
		image_url VARCHAR,
		created_by UUID REFERENCES users(id),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transfers (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		patrimony_id UUID REFERENCES patrimonies(id) ON DELETE CASCADE,
		from_department VARCHAR NOT NULL,
		to_department VARCHAR NOT NULL,
		reason TEXT,
		transferred_by UUID REFERENCES users(id),
		transferred_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,
}

// Migrate aplica o DDL e garante o usuário administrador inicial.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migração: %w", err)
		}
	}
	return seedAdmin(ctx, pool)
}

// seedAdmin cria o usuário admin padrão (admin/admin123) se ainda não existir.
// O hash é gerado aqui para não versionar hash fixo no código.
func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = 'admin')`,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("verificar admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (company_name, department, username, password_hash, email, role)
		 VALUES ('Prefeitura Municipal', 'Administração', 'admin', $1, 'admin@prefeitura.gov.br', 'admin')`,
		string(hash),
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
