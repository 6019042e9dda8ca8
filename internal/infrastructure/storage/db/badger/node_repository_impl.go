package dbbadger

import (
	"context"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
)

type nodeRepositoryImpl struct {
	db *repoManager
}

func (n nodeRepositoryImpl) GetNode(
	ctx context.Context, url string,
) (*domain.Node, error) {
	if err := n.db.checkOpen(); err != nil {
		return nil, err
	}

	var node domain.Node
	var err error

	if tx, ok := n.db.tx(ctx); ok {
		err = n.db.store.TxGet(tx, url, &node)
	} else {
		err = n.db.store.Get(url, &node)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &node, nil
}

func (n nodeRepositoryImpl) GetAllNodes(
	ctx context.Context,
) ([]domain.Node, error) {
	if err := n.db.checkOpen(); err != nil {
		return nil, err
	}

	var nodes []domain.Node
	var err error

	if tx, ok := n.db.tx(ctx); ok {
		err = n.db.store.TxFind(tx, &nodes, nil)
	} else {
		err = n.db.store.Find(&nodes, nil)
	}

	return nodes, err
}

func (n nodeRepositoryImpl) AddNode(
	ctx context.Context, node *domain.Node,
) error {
	if err := n.db.checkOpen(); err != nil {
		return err
	}

	var err error
	if tx, ok := n.db.tx(ctx); ok {
		err = n.db.store.TxUpsert(tx, node.URL, *node)
	} else {
		err = n.db.store.Upsert(node.URL, *node)
	}
	if err != nil {
		return fmt.Errorf("storing node %s: %w", node.URL, err)
	}

	return nil
}

func (n nodeRepositoryImpl) AddNodes(
	ctx context.Context, nodes []domain.Node,
) error {
	for i := range nodes {
		if err := n.AddNode(ctx, &nodes[i]); err != nil {
			return err
		}
	}
	return nil
}

func (n nodeRepositoryImpl) DeleteNode(
	ctx context.Context, url string,
) error {
	if err := n.db.checkOpen(); err != nil {
		return err
	}

	var err error
	if tx, ok := n.db.tx(ctx); ok {
		err = n.db.store.TxDelete(tx, url, domain.Node{})
	} else {
		err = n.db.store.Delete(url, domain.Node{})
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.ErrNodeNotFound
		}
		return err
	}

	return nil
}

func (n nodeRepositoryImpl) DeleteAllNodes(ctx context.Context) error {
	if err := n.db.checkOpen(); err != nil {
		return err
	}

	if tx, ok := n.db.tx(ctx); ok {
		return n.db.store.TxDeleteMatching(tx, domain.Node{}, nil)
	}
	return n.db.store.DeleteMatching(domain.Node{}, nil)
}
