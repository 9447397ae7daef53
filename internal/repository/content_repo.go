package repository

import (
	"errors"

	"github.com/restaurantcms/backend/internal/model"
	"gorm.io/gorm"
)

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// translateError 将 gorm 的未找到错误统一映射为 ErrNotFound
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// createWithEnvelope 先写信封拿到数据库分配的 id，再用同一个 id 写明细。
// 两条写入在同一个事务里，任一失败则整体回滚，不允许出现无明细的孤儿信封。
func (r *contentRepository) createWithEnvelope(envelope *model.PageContent, setDetailID func(id uint), createDetail func(tx *gorm.DB) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(envelope).Error; err != nil {
			return err
		}
		setDetailID(envelope.ID)
		return createDetail(tx)
	})
}

func (r *contentRepository) CreateChef(envelope *model.PageContent, detail *model.ChefItem) error {
	envelope.ItemType = model.ItemTypeChef
	return r.createWithEnvelope(envelope,
		func(id uint) { detail.ID = id },
		func(tx *gorm.DB) error { return tx.Create(detail).Error })
}

func (r *contentRepository) CreateMenuItem(envelope *model.PageContent, detail *model.MenuItem) error {
	envelope.ItemType = model.ItemTypeMenuItem
	return r.createWithEnvelope(envelope,
		func(id uint) { detail.ID = id },
		func(tx *gorm.DB) error { return tx.Create(detail).Error })
}

func (r *contentRepository) CreatePageItem(envelope *model.PageContent, detail *model.PageItem) error {
	envelope.ItemType = model.ItemTypePageItem
	return r.createWithEnvelope(envelope,
		func(id uint) { detail.ID = id },
		func(tx *gorm.DB) error { return tx.Create(detail).Error })
}

// updatePair 同一事务里按共享 id 更新信封和明细，任何一行不存在都算 ErrNotFound
func (r *contentRepository) updatePair(envelope *model.PageContent, detailModel interface{}, detail interface{}, detailID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.PageContent{}).Where("id = ?", envelope.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := tx.Model(detailModel).Where("id = ?", detailID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := tx.Save(envelope).Error; err != nil {
			return err
		}
		return tx.Save(detail).Error
	})
}

func (r *contentRepository) UpdateChef(envelope *model.PageContent, detail *model.ChefItem) error {
	return r.updatePair(envelope, &model.ChefItem{}, detail, detail.ID)
}

func (r *contentRepository) UpdateMenuItem(envelope *model.PageContent, detail *model.MenuItem) error {
	return r.updatePair(envelope, &model.MenuItem{}, detail, detail.ID)
}

func (r *contentRepository) UpdatePageItem(envelope *model.PageContent, detail *model.PageItem) error {
	return r.updatePair(envelope, &model.PageItem{}, detail, detail.ID)
}

func (r *contentRepository) GetEnvelope(id uint) (*model.PageContent, error) {
	var envelope model.PageContent
	if err := r.db.First(&envelope, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &envelope, nil
}

func (r *contentRepository) GetChef(id uint) (*model.ChefItem, error) {
	var detail model.ChefItem
	if err := r.db.First(&detail, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &detail, nil
}

func (r *contentRepository) GetMenuItem(id uint) (*model.MenuItem, error) {
	var detail model.MenuItem
	if err := r.db.First(&detail, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &detail, nil
}

func (r *contentRepository) GetPageItem(id uint) (*model.PageItem, error) {
	var detail model.PageItem
	if err := r.db.First(&detail, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &detail, nil
}

func (r *contentRepository) ListEnvelopes(activeOnly bool) ([]model.PageContent, error) {
	var envelopes []model.PageContent
	query := r.db.Order("position, id")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&envelopes).Error; err != nil {
		return nil, err
	}
	return envelopes, nil
}

func (r *contentRepository) ListChefsByIDs(ids []uint) ([]model.ChefItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var details []model.ChefItem
	if err := r.db.Where("id IN ?", ids).Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *contentRepository) ListMenuItemsByIDs(ids []uint) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var details []model.MenuItem
	if err := r.db.Where("id IN ?", ids).Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *contentRepository) ListPageItemsByIDs(ids []uint) ([]model.PageItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var details []model.PageItem
	if err := r.db.Where("id IN ?", ids).Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// UpdateSettings 只动信封的排序和可见性，不触碰明细
func (r *contentRepository) UpdateSettings(id uint, position int, isActive bool, updatedBy *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var envelope model.PageContent
		if err := tx.First(&envelope, id).Error; err != nil {
			return translateError(err)
		}
		updates := map[string]interface{}{
			"position":  position,
			"is_active": isActive,
		}
		if updatedBy != nil {
			updates["updated_by"] = *updatedBy
		}
		return tx.Model(&envelope).Updates(updates).Error
	})
}

// Delete 级联删除：关联行、明细行、信封行在同一个事务里一起消失
func (r *contentRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var envelope model.PageContent
		if err := tx.First(&envelope, id).Error; err != nil {
			return translateError(err)
		}

		if err := tx.Where("page_content_id = ?", id).Delete(&model.PageToContent{}).Error; err != nil {
			return err
		}

		switch envelope.ItemType {
		case model.ItemTypeChef:
			if err := tx.Delete(&model.ChefItem{}, id).Error; err != nil {
				return err
			}
		case model.ItemTypeMenuItem:
			if err := tx.Delete(&model.MenuItem{}, id).Error; err != nil {
				return err
			}
		case model.ItemTypePageItem:
			if err := tx.Delete(&model.PageItem{}, id).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.PageContent{}, id).Error
	})
}
