package domain

// Friendship is an undirected link between two users. Generated friendships
// always carry UserID < FriendID.
type Friendship struct {
	UserID   int `json:"userId"`
	FriendID int `json:"friendId"`
}

// ParentLink records that Parent is a direct parent of Child in a family tree.
type ParentLink struct {
	Parent int `json:"parent"`
	Child  int `json:"child"`
}
