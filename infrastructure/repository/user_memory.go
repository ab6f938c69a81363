package repository

import (
	"strings"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

type memoryUserRepository struct {
	users []domain.User
}

// NewMemoryUserRepository atende o login sem banco de dados, a partir dos usuários configurados
func NewMemoryUserRepository(users ...domain.User) UserRepository {
	return &memoryUserRepository{
		users: users,
	}
}

func (r *memoryUserRepository) GetUserByEmail(email string) (*domain.User, error) {
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) GetUserByID(userID int) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == userID {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}
