package request

type CreateTodoRequest struct {
	Name    string `json:"name" validate:"required"`
	DueDate string `json:"dueDate" validate:"required"`
}

type UpdateTodoRequest struct {
	Name          string `json:"name" validate:"required"`
	DueDate       string `json:"dueDate" validate:"required"`
	Done          bool   `json:"done"`
	AttachmentURL string `json:"attachmentUrl"`
}
