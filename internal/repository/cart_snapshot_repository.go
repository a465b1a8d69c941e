package repository

import (
	"errors"

	"github.com/granit-next/internal/models"

	"gorm.io/gorm"
)

// CartSnapshotRepository 购物车快照数据访问接口
type CartSnapshotRepository interface {
	GetByKey(key string) (*models.CartSnapshot, error)
	Upsert(key string, value string) (*models.CartSnapshot, error)
	DeleteByKey(key string) error
}

// GormCartSnapshotRepository GORM 实现
type GormCartSnapshotRepository struct {
	db *gorm.DB
}

// NewCartSnapshotRepository 创建购物车快照仓库
func NewCartSnapshotRepository(db *gorm.DB) *GormCartSnapshotRepository {
	return &GormCartSnapshotRepository{db: db}
}

// GetByKey 获取快照
func (r *GormCartSnapshotRepository) GetByKey(key string) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	if err := r.db.Where("key = ?", key).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// Upsert 更新或创建快照
func (r *GormCartSnapshotRepository) Upsert(key string, value string) (*models.CartSnapshot, error) {
	snapshot, err := r.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		snapshot = &models.CartSnapshot{
			Key:   key,
			Value: value,
		}
		if err := r.db.Create(snapshot).Error; err != nil {
			return nil, err
		}
		return snapshot, nil
	}

	snapshot.Value = value
	if err := r.db.Save(snapshot).Error; err != nil {
		return nil, err
	}
	return snapshot, nil
}

// DeleteByKey 删除快照
func (r *GormCartSnapshotRepository) DeleteByKey(key string) error {
	return r.db.Where("key = ?", key).Delete(&models.CartSnapshot{}).Error
}
