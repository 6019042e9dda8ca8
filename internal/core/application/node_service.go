package application

import (
	"context"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/ports"
)

// NodeService exposes node configuration storage to the business layer
type NodeService interface {
	GetNode(ctx context.Context, url string) (*domain.Node, error)
	ListNodes(ctx context.Context) ([]domain.Node, error)
	// AddCustomNode upserts a user-added node
	AddCustomNode(ctx context.Context, url string, pow bool) error
	// AddNodes upserts the whole batch in one write scope
	AddNodes(ctx context.Context, nodes []domain.Node) error
	RemoveNode(ctx context.Context, url string) error
}

type nodeService struct {
	repoManager ports.RepoManager
}

func NewNodeService(repoManager ports.RepoManager) NodeService {
	return &nodeService{repoManager}
}

func (n *nodeService) GetNode(ctx context.Context, url string) (*domain.Node, error) {
	return n.repoManager.NodeRepository().GetNode(ctx, url)
}

func (n *nodeService) ListNodes(ctx context.Context) ([]domain.Node, error) {
	return n.repoManager.NodeRepository().GetAllNodes(ctx)
}

func (n *nodeService) AddCustomNode(ctx context.Context, url string, pow bool) error {
	node, err := domain.NewNode(url, true, pow)
	if err != nil {
		return err
	}

	_, err = n.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, n.repoManager.NodeRepository().AddNode(ctx, node)
		},
	)
	return err
}

func (n *nodeService) AddNodes(ctx context.Context, nodes []domain.Node) error {
	_, err := n.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, n.repoManager.NodeRepository().AddNodes(ctx, nodes)
		},
	)
	return err
}

func (n *nodeService) RemoveNode(ctx context.Context, url string) error {
	_, err := n.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, n.repoManager.NodeRepository().DeleteNode(ctx, url)
		},
	)
	return err
}
