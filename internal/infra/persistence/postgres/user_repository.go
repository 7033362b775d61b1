// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mealbell/internal/domain/entity"
	domainerrors "mealbell/internal/domain/errors"
	"mealbell/internal/domain/repository"
	"mealbell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a user by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindUserByEmail retrieves a user by their email address.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindUsersByEmails retrieves the users matching the given emails.
func (repo *userRepository) FindUsersByEmails(ctx context.Context, emails []string) ([]*entity.User, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("email IN ?", emails).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by emails")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindNotifiableUsers retrieves all users whose master notification switch is on.
func (repo *userRepository) FindNotifiableUsers(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("allow_notifications = ?", true).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifiable users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdatePreferences persists the user's preference lists and alert flags.
func (repo *userRepository) UpdatePreferences(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"allergies":             joinList(user.Allergies),
			"favorite_menus":        joinList(user.FavoriteMenus),
			"allow_notifications":   user.AllowNotifications,
			"allow_allergy_alerts":  user.AllowAllergyAlerts,
			"allow_favorite_alerts": user.AllowFavoriteAlerts,
		})

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required preference information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update preferences")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                  data.ID,
		Email:               data.Email,
		Name:                data.Name,
		Allergies:           splitList(data.Allergies),
		FavoriteMenus:       splitList(data.FavoriteMenus),
		AllowNotifications:  data.AllowNotifications,
		AllowAllergyAlerts:  data.AllowAllergyAlerts,
		AllowFavoriteAlerts: data.AllowFavoriteAlerts,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
