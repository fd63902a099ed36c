package repositories

import (
	"context"
	"time"

	"github.com/you/phoneauthsvc/domain"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint      `gorm:"primaryKey"`
	Phone        string    `gorm:"uniqueIndex;size:32"`
	Profile      bool      `gorm:"index;default:false"`
	FirstName    string    `gorm:"size:255"`
	LastName     string    `gorm:"size:255"`
	ProfileImage string    `gorm:"size:1024"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdateProfile implements domain.UserRepository. Setting the profile
// fields also flips the completion flag.
func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, phone string, update domain.ProfileUpdate) (*domain.User, error) {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("phone = ?", phone).Updates(map[string]interface{}{
		"first_name":    update.FirstName,
		"last_name":     update.LastName,
		"profile_image": update.ProfileImage,
		"profile":       true,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}

	return r.FindByPhone(ctx, phone)
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Phone:        user.Phone,
		Profile:      user.Profile,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		ProfileImage: user.ProfileImage,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Phone:        dbUser.Phone,
		Profile:      dbUser.Profile,
		FirstName:    dbUser.FirstName,
		LastName:     dbUser.LastName,
		ProfileImage: dbUser.ProfileImage,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
