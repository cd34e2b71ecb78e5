package models

// Category is an owner-scoped label for transactions and budgets.
//
// A category cannot be deleted while any transaction or budget references it;
// the service layer enforces this before issuing the delete.
type Category struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"ownerId"`

	// Title is 3-50 characters; uniqueness per owner is not enforced.
	Title string `json:"title"`

	// Description is 3-100 characters.
	Description string `json:"description"`
}
