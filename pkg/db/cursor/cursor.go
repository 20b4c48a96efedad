package cursor

import (
	"encoding/json"
	"errors"
	"net/url"
)

// Key is the owner-index continuation key: the table keys plus the index
// sort attribute of the last item on a page.
type Key struct {
	TodoID    string `json:"todoId"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

var ErrInvalidCursor = errors.New("invalid cursor")

// Encode serializes a continuation key into an opaque, URL-safe token.
// A nil key means the query reached the end of results and encodes to "".
func Encode(key *Key) string {
	if key == nil {
		return ""
	}

	data, _ := json.Marshal(key)

	return url.QueryEscape(string(data))
}

// Decode reverses Encode. An empty token yields (nil, nil), meaning start
// from the first page. A token that does not round-trip is a caller error,
// never a silent first-page fallback.
func Decode(token string) (*Key, error) {
	if token == "" {
		return nil, nil
	}

	unescaped, err := url.QueryUnescape(token)

	if err != nil {
		return nil, ErrInvalidCursor
	}

	var key Key

	if err := json.Unmarshal([]byte(unescaped), &key); err != nil {
		return nil, ErrInvalidCursor
	}

	return &key, nil
}
