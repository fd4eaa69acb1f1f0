package identity

import (
	"fmt"

	"screenprint_estimator/internal/usecase/interfaces"

	"github.com/bwmarrin/snowflake"
)

// SnowflakeGenerator issues time-ordered estimate ids.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

var _ interfaces.IEstimateIDGenerator = (*SnowflakeGenerator)(nil)

func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node %d: %w", nodeID, err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) NextID() string {
	return g.node.Generate().String()
}
