package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse wraps informational responses that carry no entity.
type messageResponse struct {
	Message string `json:"message"`
}
