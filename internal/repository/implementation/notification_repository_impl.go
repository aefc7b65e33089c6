package implementation

import (
	"context"

	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/mapper"
	"virtual-classroom-be/internal/model"
	"virtual-classroom-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) contract.NotificationRepository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *entity.Notification) error {
	modelNotification := r.mapper.ToModel(notification)
	if err := r.db.WithContext(ctx).Create(modelNotification).Error; err != nil {
		return err
	}
	*notification = *r.mapper.ToEntity(modelNotification)
	return nil
}

func (r *NotificationRepositoryImpl) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	models := r.mapper.ToModels(notifications)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*notifications[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *NotificationRepositoryImpl) FindUnread(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.Notification, error) {
	var modelNotifications []*model.Notification
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userId, false).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&modelNotifications).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelNotifications), nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userId, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkAsRead updates nothing when the notification is owned by someone else;
// the ownership filter makes the operation an idempotent no-op in that case.
func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, id, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userId).
		Update("is_read", true).Error
}
