package models

// Group is a set of users sharing expenses. The owner is always a member.
type Group struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"ownerId"`

	// Title is 3-50 characters.
	Title string `json:"title"`

	// Description is 3-100 characters.
	Description string `json:"description"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"createdAt"`

	// MemberIDs is the current membership set, owner included.
	// A member with split activity in the group cannot be removed.
	MemberIDs []int64 `json:"memberIds"`
}

// GroupMember pairs a member's id with their display name, as returned by
// membership queries and consumed by settlement summaries.
type GroupMember struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
}
