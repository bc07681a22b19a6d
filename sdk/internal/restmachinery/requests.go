package restmachinery

// OutboundRequest models an outbound API call. Credential and correlation
// headers are NOT represented here; those are stamped by the transport chain.
type OutboundRequest struct {
	// Method specifies the HTTP method.
	Method string
	// Path is relative to the client's API address, without a leading slash.
	Path string
	// QueryParams, when non-nil, are appended to the request URL.
	QueryParams map[string]string
	// Headers, when non-nil, are added to the request.
	Headers map[string]string
	// ReqBodyObj, when non-nil, is marshaled as the JSON request body. A
	// []byte is sent as-is.
	ReqBodyObj interface{}
	// SuccessCode is the expected response status. Zero means 200.
	SuccessCode int
	// RespObj, when non-nil, has the response body unmarshaled into it.
	RespObj interface{}
}
