package domain

import "context"

// NodeRepository is the contract for storing and retrieving node
// configurations, keyed by URL
type NodeRepository interface {
	// GetNode returns the node with the given URL, or nil without error if
	// it does not exist
	GetNode(ctx context.Context, url string) (*Node, error)
	// GetAllNodes returns all stored nodes
	GetAllNodes(ctx context.Context) ([]Node, error)
	// AddNode inserts the node, or replaces its fields in place if one with
	// the same URL is already stored
	AddNode(ctx context.Context, node *Node) error
	// AddNodes upserts the whole batch. It must run inside a single write
	// scope, all nodes are stored or none is.
	AddNodes(ctx context.Context, nodes []Node) error
	// DeleteNode removes the node with the given URL and fails with
	// ErrNodeNotFound if it does not exist
	DeleteNode(ctx context.Context, url string) error
	// DeleteAllNodes removes every stored node
	DeleteAllNodes(ctx context.Context) error
}
