package domain

import "net/http"

type Response struct {
	StatusCode int
	Body       []byte // JSON document, never empty
	Header     http.Header
}
