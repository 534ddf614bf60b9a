package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/node"
	"github.com/fekuna/omnipos-catalog-service/internal/node/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	defaultCacheTTL    = 5 * time.Minute
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type nodeUseCase struct {
	repo     node.Repository
	items    node.ItemCounter
	txm      node.TxManager
	attrs    attribute.Repository
	cache    node.Cache
	cacheTTL time.Duration
	index    node.Indexer
	events   node.EventPublisher
	logger   logger.ZapLogger
}

type Option func(*nodeUseCase)

// WithAttributes enables AddNodeWithAttributes. Only the category tree accepts it.
func WithAttributes(repo attribute.Repository) Option {
	return func(uc *nodeUseCase) { uc.attrs = repo }
}

func WithCache(c node.Cache, ttl time.Duration) Option {
	return func(uc *nodeUseCase) {
		uc.cache = c
		if ttl > 0 {
			uc.cacheTTL = ttl
		}
	}
}

func WithIndexer(idx node.Indexer) Option {
	return func(uc *nodeUseCase) { uc.index = idx }
}

func WithEvents(p node.EventPublisher) Option {
	return func(uc *nodeUseCase) { uc.events = p }
}

func NewNodeUseCase(repo node.Repository, items node.ItemCounter, txm node.TxManager, log logger.ZapLogger, opts ...Option) node.UseCase {
	uc := &nodeUseCase{
		repo:     repo,
		items:    items,
		txm:      txm,
		cacheTTL: defaultCacheTTL,
		logger:   log.With(zap.String("tree", string(repo.Tree()))),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *nodeUseCase) Tree() model.Tree {
	return uc.repo.Tree()
}

func (uc *nodeUseCase) AddNode(ctx context.Context, input *dto.AddNodeInput) (*model.Node, error) {
	n, err := newNode(input)
	if err != nil {
		return nil, err
	}

	err = uc.txm.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.requireFreeID(ctx, input.ID); err != nil {
			return err
		}
		if err := uc.requireParent(ctx, n.ParentID); err != nil {
			return err
		}
		return uc.repo.Create(ctx, n)
	})
	if err != nil {
		return nil, err
	}

	uc.afterWrite(ctx, node.EventNodeCreated, n)
	return n, nil
}

func (uc *nodeUseCase) UpdateNode(ctx context.Context, input *dto.UpdateNodeInput) (*model.Node, error) {
	if err := node.ValidateNames(input.NameEn, input.NameFr); err != nil {
		return nil, err
	}
	parentID := normalizeID(input.ParentID)

	var updated *model.Node
	err := uc.txm.WithTx(ctx, func(ctx context.Context) error {
		// 1. Load
		n, err := uc.repo.FindByID(ctx, input.ID)
		if err != nil {
			return err
		}

		// 2. Type never changes after creation
		if input.NodeType != "" && input.NodeType != n.NodeType {
			return apperror.InvalidOperation("node.type_immutable", nil,
				"node type cannot change from %s to %s", n.NodeType, input.NodeType)
		}

		// 3. Cycle check runs before the parent rule
		if parentID != nil {
			cyclic, err := uc.repo.IsAncestorOrSelf(ctx, *parentID, n.ID)
			if err != nil {
				return err
			}
			if cyclic {
				return node.CircularReference(*parentID)
			}
		}

		// 4. Parent rule against the stored type
		if err := node.ValidateParentRule(n.NodeType, parentID); err != nil {
			return err
		}
		if err := uc.requireParent(ctx, parentID); err != nil {
			return err
		}

		// 5. Persist
		n.NameEn = input.NameEn
		n.NameFr = input.NameFr
		n.ParentID = parentID
		n.IsActive = input.IsActive
		n.SortOrder = input.SortOrder
		n.UpdatedAt = time.Now().UTC()
		if err := uc.repo.Update(ctx, n); err != nil {
			return err
		}
		updated = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.afterWrite(ctx, node.EventNodeUpdated, updated)
	return updated, nil
}

func (uc *nodeUseCase) DeleteNode(ctx context.Context, id string) error {
	var deleted *model.Node
	err := uc.txm.WithTx(ctx, func(ctx context.Context) error {
		n, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		children, err := uc.repo.CountChildren(ctx, id)
		if err != nil {
			return err
		}
		if children > 0 {
			return apperror.InvalidOperation("node.has_children",
				map[string]interface{}{"Count": children}, "node %s still has %d children", id, children)
		}

		if n.NodeType == model.NodeTypeCategory {
			items, err := uc.countItems(ctx, id)
			if err != nil {
				return err
			}
			if items > 0 {
				return apperror.InvalidOperation("node.has_items",
					map[string]interface{}{"Count": items}, "category %s still has %d items", id, items)
			}
		}

		if err := uc.repo.Delete(ctx, id); err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return err
	}

	uc.afterWrite(ctx, node.EventNodeDeleted, deleted)
	return nil
}

func (uc *nodeUseCase) GetNode(ctx context.Context, id string) (*model.Node, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *nodeUseCase) GetChildren(ctx context.Context, parentID string) ([]model.Node, error) {
	return uc.cachedList(ctx, "children:"+parentID, func() ([]model.Node, error) {
		return uc.repo.FindChildren(ctx, parentID)
	})
}

func (uc *nodeUseCase) GetRootNodes(ctx context.Context) ([]model.Node, error) {
	return uc.cachedList(ctx, "roots", func() ([]model.Node, error) {
		return uc.repo.FindRoots(ctx)
	})
}

func (uc *nodeUseCase) GetNodesByType(ctx context.Context, nodeType model.NodeType) ([]model.Node, error) {
	if err := node.ValidateType(nodeType); err != nil {
		return nil, err
	}
	return uc.cachedList(ctx, "type:"+string(nodeType), func() ([]model.Node, error) {
		return uc.repo.FindByType(ctx, nodeType)
	})
}

func (uc *nodeUseCase) SearchNodes(ctx context.Context, term string, limit int) ([]model.Node, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	if uc.index != nil && strings.TrimSpace(term) != "" {
		nodes, err := uc.index.SearchNodes(ctx, uc.Tree(), term, limit)
		if err == nil {
			return nodes, nil
		}
		// If the index fails, fall through to DB
		uc.logger.Error("node search failed, falling back to DB", zap.Error(err))
	}
	return uc.repo.SearchByName(ctx, term, limit)
}

func (uc *nodeUseCase) AddNodeWithAttributes(ctx context.Context, input *dto.NodeWithAttributesInput) (*model.Node, []node.AttributeGroup, error) {
	n, err := newNode(&input.Node)
	if err != nil {
		return nil, nil, err
	}
	grouped, err := uc.buildAttributes(n.ID, input.Attributes)
	if err != nil {
		return nil, nil, err
	}

	err = uc.txm.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.requireFreeID(ctx, input.Node.ID); err != nil {
			return err
		}
		if err := uc.requireParent(ctx, n.ParentID); err != nil {
			return err
		}
		if err := uc.repo.Create(ctx, n); err != nil {
			return err
		}
		return uc.createAttributes(ctx, grouped)
	})
	if err != nil {
		return nil, nil, err
	}

	uc.afterWrite(ctx, node.EventNodeCreated, n)
	for _, g := range grouped {
		attribute.Sort(g.Attributes)
	}
	return n, grouped, nil
}

type pendingNode struct {
	node  *model.Node
	attrs []node.AttributeGroup
}

// AddMultipleNodesWithAttributes validates the whole batch before writing any of it
// and then inserts everything in one transaction. Parents may be existing rows or
// earlier entries of the same batch.
func (uc *nodeUseCase) AddMultipleNodesWithAttributes(ctx context.Context, inputs []dto.NodeWithAttributesInput) ([]model.Node, error) {
	if len(inputs) == 0 {
		return []model.Node{}, nil
	}

	// 1. Validate every entry, collecting all failures
	pending := make([]pendingNode, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	external := map[string]int{}
	var errs error
	for i := range inputs {
		n, err := newNode(&inputs[i].Node)
		if err != nil {
			errs = multierr.Append(errs, entryError(i, err))
			continue
		}
		grouped, err := uc.buildAttributes(n.ID, inputs[i].Attributes)
		if err != nil {
			errs = multierr.Append(errs, entryError(i, err))
			continue
		}
		if _, dup := seen[n.ID]; dup {
			errs = multierr.Append(errs, entryError(i, apperror.InvalidArgument("node.duplicate_id",
				map[string]interface{}{"ID": n.ID}, "node id %s appears twice in the batch", n.ID)))
			continue
		}
		if n.ParentID != nil {
			if _, inBatch := seen[*n.ParentID]; !inBatch {
				if _, ok := external[*n.ParentID]; !ok {
					external[*n.ParentID] = i
				}
			}
		}
		seen[n.ID] = struct{}{}
		pending = append(pending, pendingNode{node: n, attrs: grouped})
	}
	if errs != nil {
		return nil, errs
	}

	// 2. Write all or nothing
	err := uc.txm.WithTx(ctx, func(ctx context.Context) error {
		var rejected error
		for i := range inputs {
			if err := uc.requireFreeID(ctx, inputs[i].Node.ID); err != nil {
				rejected = multierr.Append(rejected, entryError(i, err))
			}
		}
		for parentID, i := range external {
			if err := uc.requireParent(ctx, &parentID); err != nil {
				rejected = multierr.Append(rejected, entryError(i, err))
			}
		}
		if rejected != nil {
			return rejected
		}

		for _, p := range pending {
			if err := uc.repo.Create(ctx, p.node); err != nil {
				return err
			}
			if err := uc.createAttributes(ctx, p.attrs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created := make([]model.Node, 0, len(pending))
	for _, p := range pending {
		uc.afterWrite(ctx, node.EventNodeCreated, p.node)
		created = append(created, *p.node)
	}
	uc.logger.Info("added node batch", zap.Int("count", len(created)))
	return created, nil
}

func (uc *nodeUseCase) Reindex(ctx context.Context) (int, error) {
	if uc.index == nil {
		return 0, nil
	}
	nodes, err := uc.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	var errs error
	for i := range nodes {
		errs = multierr.Append(errs, uc.index.IndexNode(ctx, uc.Tree(), &nodes[i]))
	}
	return len(nodes), errs
}

// newNode validates input and builds the row to insert.
func newNode(input *dto.AddNodeInput) (*model.Node, error) {
	if err := node.ValidateType(input.NodeType); err != nil {
		return nil, err
	}
	if err := node.ValidateNames(input.NameEn, input.NameFr); err != nil {
		return nil, err
	}
	parentID := normalizeID(input.ParentID)
	if err := node.ValidateParentRule(input.NodeType, parentID); err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	now := time.Now().UTC()

	return &model.Node{
		BaseModel: model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		NameEn:    input.NameEn,
		NameFr:    input.NameFr,
		NodeType:  input.NodeType,
		ParentID:  parentID,
		IsActive:  isActive,
		SortOrder: input.SortOrder,
	}, nil
}

func (uc *nodeUseCase) requireParent(ctx context.Context, parentID *string) error {
	if parentID == nil {
		return nil
	}
	if _, err := uc.repo.FindByID(ctx, *parentID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return node.ParentMissing(*parentID)
		}
		return err
	}
	return nil
}

// requireFreeID rejects a caller-chosen id that already names a node. Generated
// ids are not checked.
func (uc *nodeUseCase) requireFreeID(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	_, err := uc.repo.FindByID(ctx, id)
	if err == nil {
		return node.IDTaken(id)
	}
	if errors.Is(err, apperror.ErrNotFound) {
		return nil
	}
	return err
}

func (uc *nodeUseCase) countItems(ctx context.Context, id string) (int, error) {
	if uc.items == nil {
		return 0, nil
	}
	if uc.Tree() == model.TreeProduct {
		return uc.items.CountActiveByProductNode(ctx, id)
	}
	return uc.items.CountActiveByCategory(ctx, id)
}

// buildAttributes validates inputs and groups them by kind for batch inserts.
// Groups keep the order in which kinds first appear.
func (uc *nodeUseCase) buildAttributes(nodeID string, inputs []dto.AttributeInput) ([]node.AttributeGroup, error) {
	if len(inputs) == 0 {
		return []node.AttributeGroup{}, nil
	}
	if uc.attrs == nil || uc.Tree() != model.TreeCategory {
		return nil, apperror.InvalidOperation("node.attributes_unsupported", nil,
			"%s nodes do not carry attributes", uc.Tree())
	}

	var grouped []node.AttributeGroup
	index := map[model.AttributeKind]int{}
	for _, in := range inputs {
		if err := attribute.ValidateKind(in.Kind); err != nil {
			return nil, err
		}
		a := model.Attribute{
			ID:             uuid.New().String(),
			CategoryNodeID: nodeID,
			NameEn:         in.NameEn,
			NameFr:         in.NameFr,
			AttributeType:  in.AttributeType,
			SortOrder:      in.SortOrder,
		}
		if err := attribute.Validate(&a); err != nil {
			return nil, err
		}
		i, ok := index[in.Kind]
		if !ok {
			i = len(grouped)
			index[in.Kind] = i
			grouped = append(grouped, node.AttributeGroup{Kind: in.Kind})
		}
		grouped[i].Attributes = append(grouped[i].Attributes, a)
	}
	return grouped, nil
}

func (uc *nodeUseCase) createAttributes(ctx context.Context, grouped []node.AttributeGroup) error {
	for _, g := range grouped {
		if err := uc.attrs.CreateBatch(ctx, g.Kind, g.Attributes); err != nil {
			return err
		}
	}
	return nil
}

func normalizeID(id *string) *string {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil
	}
	return id
}

func entryError(i int, err error) error {
	return fmt.Errorf("entry %d: %w", i, err)
}
