package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymdesk/internal/domain/gym"
)

type jwtService interface {
	GenerateToken(userID, gymID int64, role string) (string, error)
}

// TrialStarter opens the SaaS trial for a freshly registered gym.
// Implemented by the billing service.
type TrialStarter interface {
	StartTrial(ctx context.Context, gymID int64) error
}

type Service struct {
	users  Repository
	gyms   gym.Repository
	jwt    jwtService
	trials TrialStarter
}

func NewService(users Repository, gyms gym.Repository, jwt jwtService, trials TrialStarter) *Service {
	return &Service{users: users, gyms: gyms, jwt: jwt, trials: trials}
}

type LoginResult struct {
	User  *User
	Token string
}

// Register creates the owner account and its gym in one transaction,
// then starts the billing trial.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	email := normalizeEmail(req.Email)
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         RoleOwner,
	}

	err = s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		g := &gym.Gym{
			OwnerUserID: user.ID,
			Name:        req.GymName,
			Phone:       req.Phone,
		}
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		user.GymID = g.ID
		return tx.Model(user).Update("gym_id", g.ID).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.trials.StartTrial(ctx, user.GymID); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.GymID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.GymID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

// CreateReceptionist adds a receptionist login scoped to the owner's gym.
func (s *Service) CreateReceptionist(ctx context.Context, gymID int64, req CreateReceptionistRequest) (*User, error) {
	email := normalizeEmail(req.Email)
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		GymID:        gymID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         RoleReceptionist,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListReceptionists(ctx context.Context, gymID int64) ([]*User, error) {
	users, err := s.users.ListByGymAndRole(ctx, gymID, RoleReceptionist)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.PasswordHash = ""
	}
	return users, nil
}

func (s *Service) DeleteReceptionist(ctx context.Context, gymID, userID int64) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.GymID != gymID {
		return ErrNotSameGym
	}
	if user.Role == RoleOwner {
		return ErrCannotDeleteOwner
	}
	return s.users.Delete(ctx, userID)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
