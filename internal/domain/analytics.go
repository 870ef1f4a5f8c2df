package domain

// ShortestPath is a minimum-hop friendship chain between two users.
// Found is false when the target is unreachable from the source.
type ShortestPath struct {
	SourceUserID int
	TargetUserID int
	UserIDs      []int
	Hops         int
	Found        bool
}
