package api

// genericErrorMessage is surfaced when the backend gives no usable message.
const genericErrorMessage = "something went wrong"

// RequestError means the backend answered but refused the request: a non-2xx
// status or an envelope with success=false. The message comes from the server
// envelope when present.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// TransportError means the request never produced a response.
type TransportError struct {
	Message string
}

func (e *TransportError) Error() string {
	return e.Message
}
