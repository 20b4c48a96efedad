package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnparseableDueDate marks a dueDate that matched none of the accepted
// input layouts. It is a caller error, not a store failure.
var ErrUnparseableDueDate = errors.New("unparseable dueDate")

// TimestampLayout is the canonical stored form for every date/time field.
// Fixed-width UTC keeps the owner-index sort order identical to
// lexicographic order on the attribute.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Todo is one item, addressed by the (UserID, TodoID) composite key.
// UserID is an internal addressing detail and is never serialized back to
// the caller.
type Todo struct {
	TodoID        string `json:"todoId" dynamodbav:"todoId"`
	UserID        string `json:"-" dynamodbav:"userId"`
	Name          string `json:"name" dynamodbav:"name"`
	DueDate       string `json:"dueDate" dynamodbav:"dueDate"`
	Done          bool   `json:"done" dynamodbav:"done"`
	CreatedAt     string `json:"createdAt" dynamodbav:"createdAt"`
	AttachmentURL string `json:"attachmentUrl,omitempty" dynamodbav:"attachmentUrl,omitempty"`
}

func (t *Todo) BelongsToUser(userID string) bool {
	return t.UserID == userID
}

// TodoUpdate is the mutable slice of an item. Every write is a full
// replace: an omitted Done becomes false and an omitted AttachmentURL
// becomes empty, they are never merged with the stored values.
type TodoUpdate struct {
	Name          string
	DueDate       string
	Done          bool
	AttachmentURL string
}

// FormatTimestamp renders a time in the canonical stored form.
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(TimestampLayout)
}

var dueDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	time.RFC1123,
}

// NormalizeDueDate parses any supported timestamp representation and
// re-emits the canonical form. Writes always store the canonical form no
// matter what the caller sent.
func NormalizeDueDate(raw string) (string, error) {
	for _, layout := range dueDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return FormatTimestamp(ts), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnparseableDueDate, raw)
}
