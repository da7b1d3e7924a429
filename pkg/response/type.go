package response

// ErrorResp is the JSON body returned on failure.
type ErrorResp struct {
	Error string `json:"error"`
}
