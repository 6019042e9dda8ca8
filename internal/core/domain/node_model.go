package domain

// Node is the entity data structure for a network node configuration,
// keyed by its URL. Custom marks user-added nodes, PoW marks nodes that
// accept remote proof-of-work requests.
type Node struct {
	URL    string
	Custom bool
	PoW    bool
}

// NewNode returns a Node for the given URL
func NewNode(url string, custom, pow bool) (*Node, error) {
	if len(url) <= 0 {
		return nil, ErrNullNodeURL
	}

	return &Node{
		URL:    url,
		Custom: custom,
		PoW:    pow,
	}, nil
}
