package http

import "time"

// Error is the body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateItemRequest registers a new item. The sender is the caller taken
// from the identity header, not part of the body.
type CreateItemRequest struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	Receiver       string `json:"receiver"`
	AdditionalInfo string `json:"additionalInfo"`
}

// CreateItemResponse carries the ledger-assigned item id.
type CreateItemResponse struct {
	ID int64 `json:"id"`
}

// TransferOwnershipRequest hands control of an item to another identity.
type TransferOwnershipRequest struct {
	NewOwner string `json:"newOwner"`
}

// SetNameRequest overwrites the item label.
type SetNameRequest struct {
	Name string `json:"name"`
}

// SetQuantityRequest overwrites the item quantity.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ChangeQuantityRequest adjusts the quantity by a non-negative amount.
type ChangeQuantityRequest struct {
	Amount int `json:"amount"`
}

// SetAdditionalInfoRequest overwrites the free-form description.
type SetAdditionalInfoRequest struct {
	AdditionalInfo string `json:"additionalInfo"`
}

// AddTransactionRequest appends a note to the item's transaction log.
type AddTransactionRequest struct {
	Note string `json:"note"`
}

// AddTransactionResponse carries the unix-second key the note was recorded
// under.
type AddTransactionResponse struct {
	RecordedAt int64 `json:"recordedAt"`
}

// ItemDetails is the full read model for a single item.
type ItemDetails struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	Sender         string `json:"sender"`
	Receiver       string `json:"receiver"`
	Status         string `json:"status"`
	AdditionalInfo string `json:"additionalInfo"`
}

// AdditionalInfoResponse is the read model for an item's description.
type AdditionalInfoResponse struct {
	AdditionalInfo string `json:"additionalInfo"`
}

// OwnershipResponse tells the caller whether it holds the item. GrantedAt
// is the zero time when IsOwner is false.
type OwnershipResponse struct {
	IsOwner   bool      `json:"isOwner"`
	GrantedAt time.Time `json:"grantedAt"`
}

// TransactionResponse is the read model for one transaction log entry.
type TransactionResponse struct {
	RecordedAt int64  `json:"recordedAt"`
	Note       string `json:"note"`
}

// ItemSummary is one entry of the undelivered items listing.
type ItemSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// NotificationView is one entry of an item's notification feed.
type NotificationView struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind"`
	OccurredAt time.Time         `json:"occurredAt"`
	Attributes map[string]string `json:"attributes"`
}
