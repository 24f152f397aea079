package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agroadvisor/internal/ent"
	entuser "agroadvisor/internal/ent/user"
	"agroadvisor/internal/entity"
)

// ErrDuplicateMobile reports a registration against an already-registered
// mobile number.
var ErrDuplicateMobile = errors.New("repository: mobile already registered")

// CreateUserRequest wraps the parameters for registering a user. The
// password arrives pre-hashed; this layer never sees plaintext.
type CreateUserRequest struct {
	Name         string
	Mobile       string
	PasswordHash string
	Age          int
	FarmerType   string
	Location     string
	Language     string
}

type UserRepository interface {
	Create(ctx context.Context, req CreateUserRequest) (*entity.User, error)
	// FindByMobile also returns the stored password hash for credential checks.
	FindByMobile(ctx context.Context, mobile string) (*entity.User, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type userRepository struct {
	client *ent.Client
	log    *zap.Logger
}

func NewUserRepository(client *ent.Client, logger *zap.Logger) UserRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userRepository{client: client, log: logger}
}

func (r *userRepository) Create(ctx context.Context, req CreateUserRequest) (*entity.User, error) {
	create := r.client.User.Create().
		SetName(req.Name).
		SetMobile(req.Mobile).
		SetPasswordHash(req.PasswordHash)
	if req.Age > 0 {
		create = create.SetAge(req.Age)
	}
	if req.FarmerType != "" {
		create = create.SetFarmerType(entuser.FarmerType(req.FarmerType))
	}
	if req.Location != "" {
		create = create.SetLocation(req.Location)
	}
	if req.Language != "" {
		create = create.SetLanguage(req.Language)
	}

	u, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrDuplicateMobile
		}
		r.log.Error("create user failed", zap.Error(err))
		return nil, err
	}
	return toUser(u), nil
}

func (r *userRepository) FindByMobile(ctx context.Context, mobile string) (*entity.User, string, error) {
	u, err := r.client.User.Query().
		Where(entuser.Mobile(mobile)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	return toUser(u), u.PasswordHash, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUser(u), nil
}

func toUser(u *ent.User) *entity.User {
	return &entity.User{
		ID:         u.ID,
		Name:       u.Name,
		Mobile:     u.Mobile,
		Age:        u.Age,
		FarmerType: string(u.FarmerType),
		Location:   u.Location,
		Language:   u.Language,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
