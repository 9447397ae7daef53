package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/restaurantcms/backend/internal/model"
	"github.com/restaurantcms/backend/internal/repository"
)

var (
	// ErrNavigationCycle 父节点指派会让节点成为自己的祖先
	ErrNavigationCycle = fmt.Errorf("%w: would create a cycle", ErrValidation)
)

// NavigationService 导航树：平表重建森林，并在每次变更时校验无环不变式
type NavigationService struct {
	navRepo repository.NavigationRepository
}

func NewNavigationService(navRepo repository.NavigationRepository) *NavigationService {
	return &NavigationService{navRepo: navRepo}
}

type NavigationRequest struct {
	Title        string `json:"title" binding:"required"`
	URL          string `json:"url"`
	LinkType     string `json:"link_type"`
	Position     int    `json:"position"`
	IsActive     bool   `json:"is_active"`
	NavigationID *uint  `json:"navigation_id"`
}

func (s *NavigationService) validate(req *NavigationRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: navigation title is required", ErrValidation)
	}
	if req.LinkType != "" && !model.IsValidLinkType(req.LinkType) {
		return fmt.Errorf("%w: invalid link type %q", ErrValidation, req.LinkType)
	}
	return nil
}

// List 平铺节点列表，(position, id) 升序
func (s *NavigationService) List(ctx context.Context) ([]model.Navigation, error) {
	return s.navRepo.List()
}

// Forest 当前持久化节点重建出的森林
func (s *NavigationService) Forest(ctx context.Context) ([]model.NavigationNode, error) {
	nodes, err := s.navRepo.List()
	if err != nil {
		return nil, err
	}
	return BuildForest(nodes), nil
}

// BuildForest 把平表节点组装成森林：parent 为空的是根，
// 兄弟按 (position, id) 升序。用已挂载标记限住遍历，
// 即使持久化数据意外成环也只会产出有限棵树，不会死循环。
func BuildForest(nodes []model.Navigation) []model.NavigationNode {
	childrenByParent := make(map[uint][]model.Navigation)
	var roots []model.Navigation
	for _, node := range nodes {
		if node.NavigationID == nil {
			roots = append(roots, node)
		} else {
			childrenByParent[*node.NavigationID] = append(childrenByParent[*node.NavigationID], node)
		}
	}

	sortSiblings := func(siblings []model.Navigation) {
		sort.SliceStable(siblings, func(i, j int) bool {
			if siblings[i].Position != siblings[j].Position {
				return siblings[i].Position < siblings[j].Position
			}
			return siblings[i].ID < siblings[j].ID
		})
	}
	sortSiblings(roots)

	visited := make(map[uint]bool, len(nodes))

	var attach func(node model.Navigation, level int) model.NavigationNode
	attach = func(node model.Navigation, level int) model.NavigationNode {
		visited[node.ID] = true
		out := model.NavigationNode{
			Navigation: node,
			Level:      level,
			Children:   []model.NavigationNode{},
		}
		children := childrenByParent[node.ID]
		sortSiblings(children)
		for _, child := range children {
			if visited[child.ID] {
				continue
			}
			out.Children = append(out.Children, attach(child, level+1))
		}
		return out
	}

	forest := make([]model.NavigationNode, 0, len(roots))
	for _, root := range roots {
		if visited[root.ID] {
			continue
		}
		forest = append(forest, attach(root, 0))
	}
	return forest
}

// ValidateParentAssignment 校验把 nodeID 挂到 parentID 下是否成环。
// 每次都对当前持久化的节点集合逐级上溯，绝不依赖缓存的树，
// 否则两个并发修改可能各自通过校验却共同构成环。
func (s *NavigationService) ValidateParentAssignment(ctx context.Context, nodeID uint, parentID *uint) error {
	if parentID == nil {
		return nil
	}
	if *parentID == nodeID {
		return ErrNavigationCycle
	}

	nodes, err := s.navRepo.List()
	if err != nil {
		return err
	}
	parentByID := make(map[uint]*uint, len(nodes))
	exists := make(map[uint]bool, len(nodes))
	for _, node := range nodes {
		parentByID[node.ID] = node.NavigationID
		exists[node.ID] = true
	}

	if !exists[*parentID] {
		return fmt.Errorf("%w: parent navigation node %d does not exist", ErrValidation, *parentID)
	}

	// 从目标父节点逐级上溯，撞到 nodeID 即成环；步数以节点数为界
	current := parentID
	for steps := 0; current != nil && steps <= len(nodes); steps++ {
		if *current == nodeID {
			return ErrNavigationCycle
		}
		current = parentByID[*current]
	}
	return nil
}

// Create 新建导航节点
func (s *NavigationService) Create(ctx context.Context, req *NavigationRequest, adminID *uint) (*model.Navigation, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if req.NavigationID != nil {
		if _, err := s.navRepo.Get(*req.NavigationID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent navigation node %d does not exist", ErrValidation, *req.NavigationID)
			}
			return nil, err
		}
	}

	linkType := req.LinkType
	if linkType == "" {
		linkType = model.LinkTypeInternal
	}
	node := model.Navigation{
		Title:        req.Title,
		URL:          req.URL,
		LinkType:     linkType,
		Position:     req.Position,
		IsActive:     req.IsActive,
		NavigationID: req.NavigationID,
		CreatedBy:    adminID,
		UpdatedBy:    adminID,
	}
	if err := s.navRepo.Create(&node); err != nil {
		return nil, fmt.Errorf("创建导航节点失败: %w", err)
	}
	return &node, nil
}

// Update 更新导航节点，父节点变更前重新校验无环不变式
func (s *NavigationService) Update(ctx context.Context, id uint, req *NavigationRequest, adminID *uint) (*model.Navigation, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	node, err := s.navRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.ValidateParentAssignment(ctx, id, req.NavigationID); err != nil {
		return nil, err
	}

	node.Title = req.Title
	node.URL = req.URL
	if req.LinkType != "" {
		node.LinkType = req.LinkType
	}
	node.Position = req.Position
	node.IsActive = req.IsActive
	node.NavigationID = req.NavigationID
	node.UpdatedBy = adminID

	if err := s.navRepo.Save(node); err != nil {
		return nil, fmt.Errorf("更新导航节点失败: %w", err)
	}
	return node, nil
}

// Delete 删除导航节点，子节点提升为根
func (s *NavigationService) Delete(ctx context.Context, id uint) error {
	return s.navRepo.Delete(id)
}
