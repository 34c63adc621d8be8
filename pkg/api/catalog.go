package api

// AddFavoriteRequest is the body of POST /favorites.
type AddFavoriteRequest struct {
	CompoundID string `json:"compound_id"`
}

// MessageResponse is the acknowledgement body of favorite mutations.
// The client does not rely on any field of it: after a mutation it refetches
// the full favorites list instead of patching local state.
type MessageResponse struct {
	Message string `json:"message"`
}
