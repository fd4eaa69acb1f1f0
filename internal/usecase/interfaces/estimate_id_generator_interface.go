package interfaces

// IEstimateIDGenerator hands out unique estimate ids that sort in creation order.
type IEstimateIDGenerator interface {
	NextID() string
}
