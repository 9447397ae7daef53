package repository

import (
	"github.com/restaurantcms/backend/internal/model"
	"gorm.io/gorm"
)

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) List() ([]model.Page, error) {
	var pages []model.Page
	if err := r.db.Order("id").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageRepository) Get(id uint) (*model.Page, error) {
	var page model.Page
	if err := r.db.First(&page, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &page, nil
}

func (r *pageRepository) GetBySlug(slug string) (*model.Page, error) {
	var page model.Page
	if err := r.db.First(&page, "slug = ?", slug).Error; err != nil {
		return nil, translateError(err)
	}
	return &page, nil
}

func (r *pageRepository) Create(page *model.Page) error {
	return r.db.Create(page).Error
}

func (r *pageRepository) Save(page *model.Page) error {
	return r.db.Save(page).Error
}

// Delete 删除页面并清掉它的全部关联行
func (r *pageRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var page model.Page
		if err := tx.First(&page, id).Error; err != nil {
			return translateError(err)
		}
		if err := tx.Where("page_id = ?", id).Delete(&model.PageToContent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Page{}, id).Error
	})
}

func (r *pageRepository) GetContentIDs(pageID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&model.PageToContent{}).
		Where("page_id = ?", pageID).
		Order("page_content_id").
		Pluck("page_content_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// SetAssociations 对比目标集合与当前持久化集合，补缺删余。
// 重复调用同样的输入不产生重复行，也不报错。
func (r *pageRepository) SetAssociations(pageID uint, contentIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var page model.Page
		if err := tx.First(&page, pageID).Error; err != nil {
			return translateError(err)
		}

		var current []uint
		if err := tx.Model(&model.PageToContent{}).
			Where("page_id = ?", pageID).
			Pluck("page_content_id", &current).Error; err != nil {
			return err
		}

		desired := make(map[uint]bool, len(contentIDs))
		for _, id := range contentIDs {
			desired[id] = true
		}
		existing := make(map[uint]bool, len(current))
		for _, id := range current {
			existing[id] = true
		}

		var stale []uint
		for _, id := range current {
			if !desired[id] {
				stale = append(stale, id)
			}
		}
		if len(stale) > 0 {
			if err := tx.Where("page_id = ? AND page_content_id IN ?", pageID, stale).
				Delete(&model.PageToContent{}).Error; err != nil {
				return err
			}
		}

		for id := range desired {
			if existing[id] {
				continue
			}
			// 关联目标必须是真实存在的内容信封
			var count int64
			if err := tx.Model(&model.PageContent{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
			if err := tx.Create(&model.PageToContent{PageID: pageID, PageContentID: id}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
