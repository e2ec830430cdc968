package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/uvcaspaces/booking-portal/internal/models"
)

const bcryptCost = 10

var (
	// ErrDuplicate means the email or username is already taken.
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
)

// UserStore is the credential store. The password hash never leaves this
// package except inside models.User, whose JSON marshalling excludes it.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

type NewUser struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Company   string
}

// Create hashes the password and persists the user with role "user".
// Admins are never created through this path.
func (s *UserStore) Create(ctx context.Context, in NewUser) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     strings.ToLower(strings.TrimSpace(in.Username)),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hashed),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Company:      strings.TrimSpace(in.Company),
		Role:         models.RoleUser,
	}
	if user.Username == "" {
		user.Username = user.Email
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, "email = ?", normalize(email))
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, "username = ?", normalize(username))
}

// FindByLogin accepts either an email or a username, the way the login
// form does.
func (s *UserStore) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	l := normalize(login)
	return s.findOne(ctx, "email = ? OR username = ?", l, l)
}

func (s *UserStore) findOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// VerifyPassword delegates the comparison to bcrypt.
func (s *UserStore) VerifyPassword(user *models.User, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil
}

type ProfileUpdate struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Company      *string `json:"company,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// UpdateProfile merges the allow-listed fields only. Role and password
// changes cannot travel through here.
func (s *UserStore) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*models.User, error) {
	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		user.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Company != nil {
		user.Company = strings.TrimSpace(*in.Company)
	}
	if in.ProfileImage != nil {
		user.ProfileImage = *in.ProfileImage
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// List returns all users, newest first. The password hash is excluded by
// the model's JSON tags.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// PromoteAdminEmail points the admin account at a new email address,
// creating the account if none exists yet.
func (s *UserStore) PromoteAdminEmail(ctx context.Context, email, initialPassword string) (*models.User, error) {
	email = normalize(email)

	var admin models.User
	err := s.db.WithContext(ctx).Where("role = ?", models.RoleAdmin).First(&admin).Error
	if err == nil {
		admin.Email = email
		if saveErr := s.db.WithContext(ctx).Save(&admin).Error; saveErr != nil {
			if isUniqueViolation(saveErr) {
				return nil, ErrDuplicate
			}
			return nil, saveErr
		}
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcryptCost)
	if err != nil {
		return nil, err
	}

	admin = models.User{
		Username:     email,
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    "Admin",
		LastName:     "User",
		Role:         models.RoleAdmin,
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &admin, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// isUniqueViolation reports a postgres unique-constraint failure
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
