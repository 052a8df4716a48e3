package idgen

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init sets the snowflake node used by Generate. Call it once at startup.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	once.Do(func() {})
	node = n
	return nil
}

// Generate returns a new id, falling back to node 1 if Init was never called.
func Generate() snowflake.ID {
	once.Do(func() {
		node, _ = snowflake.NewNode(1)
	})
	return node.Generate()
}
