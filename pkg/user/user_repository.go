package user

import (
	"context"
	"gracebites-backend/domain"
	"gracebites-backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		GetUsersByRole(ctx context.Context, role string) ([]*entities.User, error)

		CreateLoginHistory(ctx context.Context, history *entities.LoginHistory) error

		DeleteUserCascade(ctx context.Context, user *entities.User) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) GetUsersByRole(ctx context.Context, role string) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("username ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CreateLoginHistory(ctx context.Context, history *entities.LoginHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

// DeleteUserCascade removes the user together with every row it owns in a
// single transaction. Collaborations go first: they hold foreign keys into
// food_donations and food_requests, and every collaboration touching this
// user's donations or requests also carries the user as donor or ngo, so the
// two party filters clear the referencing rows before the referenced ones.
func (r *userRepository) DeleteUserCascade(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("donor_id = ?", user.ID).Delete(&entities.Collaboration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ngo_id = ?", user.ID).Delete(&entities.Collaboration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("donor_id = ?", user.ID).Delete(&entities.FoodDonation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("requester_id = ?", user.ID).Delete(&entities.FoodRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&entities.Analysis{}).Error; err != nil {
			return err
		}

		// Role profile and the legacy profile may be absent; gorm deletes on
		// an empty match set report no error, which is what we want.
		switch user.Role {
		case domain.RoleRestaurant:
			if err := tx.Where("user_id = ?", user.ID).Delete(&entities.RestaurantProfile{}).Error; err != nil {
				return err
			}
		case domain.RoleNGO:
			if err := tx.Where("user_id = ?", user.ID).Delete(&entities.NGOProfile{}).Error; err != nil {
				return err
			}
		case domain.RoleEventPlanner:
			if err := tx.Where("user_id = ?", user.ID).Delete(&entities.EventPlannerProfile{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&entities.UserProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&entities.LoginHistory{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", user.ID).Delete(&entities.User{}).Error
	})
}
