package response

import "todoapi/internal/core/domain"

// TodoPage is one page of a reverse-chronological listing. NextKey is nil
// once the last page has been reached.
type TodoPage struct {
	Items   []domain.Todo `json:"items"`
	NextKey *string       `json:"nextKey"`
}

type CreateTodoResponse struct {
	Item domain.Todo `json:"item"`
}

type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
