package operator

import (
	"context"
	"errors"

	"github.com/atlasdesk/support-backend/internal/shared"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Operator{})
}

func (s *Store) Create(ctx context.Context, op *Operator, password string) error {
	if op.ID == "" {
		op.ID = shared.NewID("op_")
	}
	if op.Role == "" {
		op.Role = RoleAgent
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	op.PasswordHash = string(hash)

	return s.db.WithContext(ctx).Create(op).Error
}

func (s *Store) GetByID(ctx context.Context, id string) (*Operator, error) {
	var op Operator
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&op).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &op, err
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Operator, error) {
	var op Operator
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&op).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &op, err
}

// Authenticate checks credentials and returns the operator on success.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*Operator, error) {
	op, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) != nil {
		return nil, shared.ErrUnauthorized
	}
	return op, nil
}
