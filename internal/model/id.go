package model

import "github.com/bwmarrin/snowflake"

// Line item ids must stay unique across removals, so they come from a
// snowflake node instead of the current list length.
var idNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	idNode = node
}

// NewID generates a unique, monotonically increasing line item id.
func NewID() snowflake.ID {
	return idNode.Generate()
}
