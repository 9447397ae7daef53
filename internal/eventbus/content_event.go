package eventbus

import "context"

type ContentEventType string

const (
	ContentEventCreated ContentEventType = "ContentCreated"
	ContentEventUpdated ContentEventType = "ContentUpdated"
	ContentEventDeleted ContentEventType = "ContentDeleted"
)

// ContentEvent 内容条目的生命周期事件，AdminID 为触发操作的管理员（可空）
type ContentEvent struct {
	Type      ContentEventType
	ContentID uint
	ItemType  string
	AdminID   *uint
}

type ContentEventHandler = func(ctx context.Context, event ContentEvent) error
