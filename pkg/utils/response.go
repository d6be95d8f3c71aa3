package utils

// ResponseData is the JSON envelope used by management endpoints.
// Status is only used to pick the HTTP status code; it is not serialized.
type ResponseData struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}

// PanicIfNeeded panics on error so the recovery middleware can translate
// typed errors into proper HTTP responses.
func PanicIfNeeded(err any) {
	if err != nil {
		panic(err)
	}
}
