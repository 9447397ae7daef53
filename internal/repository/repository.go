package repository

import (
	"errors"

	"github.com/restaurantcms/backend/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

// ContentRepository 内容信封与明细的存取。
// 信封和明细共用同一个 id，创建/更新/删除都必须在同一个事务里落两张表。
type ContentRepository interface {
	CreateChef(envelope *model.PageContent, detail *model.ChefItem) error
	CreateMenuItem(envelope *model.PageContent, detail *model.MenuItem) error
	CreatePageItem(envelope *model.PageContent, detail *model.PageItem) error

	UpdateChef(envelope *model.PageContent, detail *model.ChefItem) error
	UpdateMenuItem(envelope *model.PageContent, detail *model.MenuItem) error
	UpdatePageItem(envelope *model.PageContent, detail *model.PageItem) error

	GetEnvelope(id uint) (*model.PageContent, error)
	GetChef(id uint) (*model.ChefItem, error)
	GetMenuItem(id uint) (*model.MenuItem, error)
	GetPageItem(id uint) (*model.PageItem, error)

	// ListEnvelopes 按 (position, id) 升序返回信封
	ListEnvelopes(activeOnly bool) ([]model.PageContent, error)
	ListChefsByIDs(ids []uint) ([]model.ChefItem, error)
	ListMenuItemsByIDs(ids []uint) ([]model.MenuItem, error)
	ListPageItemsByIDs(ids []uint) ([]model.PageItem, error)

	UpdateSettings(id uint, position int, isActive bool, updatedBy *uint) error
	Delete(id uint) error
}

// NavigationRepository 导航节点存取
type NavigationRepository interface {
	List() ([]model.Navigation, error)
	Get(id uint) (*model.Navigation, error)
	Create(node *model.Navigation) error
	Save(node *model.Navigation) error
	Delete(id uint) error
}

// PageRepository 页面及页面-内容关联存取
type PageRepository interface {
	List() ([]model.Page, error)
	Get(id uint) (*model.Page, error)
	GetBySlug(slug string) (*model.Page, error)
	Create(page *model.Page) error
	Save(page *model.Page) error
	Delete(id uint) error

	GetContentIDs(pageID uint) ([]uint, error)
	SetAssociations(pageID uint, contentIDs []uint) error
}

// AdministratorRepository 管理员账号存取
type AdministratorRepository interface {
	List() ([]model.Administrator, error)
	Get(id uint) (*model.Administrator, error)
	GetByEmail(email string) (*model.Administrator, error)
	Create(admin *model.Administrator) error
	Save(admin *model.Administrator) error
	Delete(id uint) error
}

// ResetTokenRepository 密码重置令牌存取
type ResetTokenRepository interface {
	// Create 持久化新令牌，同时作废该管理员此前未使用的令牌
	Create(token *model.PasswordResetToken) error
	GetByToken(token string) (*model.PasswordResetToken, error)
	// Consume 在一个事务里原子地核销令牌并写入新密码哈希；
	// 令牌已被抢先核销时返回 ErrNotFound
	Consume(tokenID uint, administratorID uint, passwordHash string) error
}

// CurrencyRepository 货币字典存取
type CurrencyRepository interface {
	List() ([]model.Currency, error)
	Get(id uint) (*model.Currency, error)
	Create(currency *model.Currency) error
	Save(currency *model.Currency) error
	Delete(id uint) error
}

// ContactTypeRepository 联系方式类型字典存取
type ContactTypeRepository interface {
	List() ([]model.ContactType, error)
	Get(id uint) (*model.ContactType, error)
	Create(contactType *model.ContactType) error
	Save(contactType *model.ContactType) error
	Delete(id uint) error
}

// ConfigurationRepository 站点配置键值对存取
type ConfigurationRepository interface {
	List() ([]model.Configuration, error)
	Get(key string) (*model.Configuration, error)
	Set(entry *model.Configuration) error
	Delete(key string) error
}
