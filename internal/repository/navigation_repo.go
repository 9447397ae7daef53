package repository

import (
	"github.com/restaurantcms/backend/internal/model"
	"gorm.io/gorm"
)

type navigationRepository struct {
	db *gorm.DB
}

func NewNavigationRepository(db *gorm.DB) NavigationRepository {
	return &navigationRepository{db: db}
}

func (r *navigationRepository) List() ([]model.Navigation, error) {
	var nodes []model.Navigation
	if err := r.db.Order("position, id").Find(&nodes).Error; err != nil {
		return nil, err
	}
	return nodes, nil
}

func (r *navigationRepository) Get(id uint) (*model.Navigation, error) {
	var node model.Navigation
	if err := r.db.First(&node, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &node, nil
}

func (r *navigationRepository) Create(node *model.Navigation) error {
	return r.db.Create(node).Error
}

func (r *navigationRepository) Save(node *model.Navigation) error {
	return r.db.Save(node).Error
}

// Delete 删除节点，子节点提升为根节点，避免悬空的父引用
func (r *navigationRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var node model.Navigation
		if err := tx.First(&node, id).Error; err != nil {
			return translateError(err)
		}
		if err := tx.Model(&model.Navigation{}).
			Where("navigation_id = ?", id).
			Update("navigation_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Navigation{}, id).Error
	})
}
