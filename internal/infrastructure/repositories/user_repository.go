package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// UserRepository implements domain.UserRepository using GORM
type UserRepository struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Name          string    `gorm:"size:255"`
	Email         string    `gorm:"uniqueIndex;size:255"`
	PasswordHash  string    `gorm:"column:password"`
	Role          string    `gorm:"index;size:64"`
	AvatarAssetID string    `gorm:"size:255"`
	AvatarURL     string    `gorm:"size:512"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// Create implements domain.UserRepository. A missing id is assigned here so
// callers never deal with uninitialized records.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Save(dbUser).Error; err != nil {
		return err
	}
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// domainToDB converts domain user to database user
func (r *UserRepository) domainToDB(user *domain.User) *DBUser {
	dbUser := &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.Avatar != nil {
		dbUser.AvatarAssetID = user.Avatar.AssetID
		dbUser.AvatarURL = user.Avatar.URL
	}
	return dbUser
}

// dbToDomain converts database user to domain user
func (r *UserRepository) dbToDomain(dbUser *DBUser) *domain.User {
	user := &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Role:         dbUser.Role,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
	if dbUser.AvatarAssetID != "" || dbUser.AvatarURL != "" {
		user.Avatar = &domain.Avatar{AssetID: dbUser.AvatarAssetID, URL: dbUser.AvatarURL}
	}
	return user
}
