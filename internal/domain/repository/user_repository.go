package repository

import (
	"context"

	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
)

// UserRepository porta de persistência para usuários.
// Os métodos Get* devolvem (nil, nil) quando o usuário não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
