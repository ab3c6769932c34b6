// Package jsonrpc is the JSON-RPC 2.0 binding. The protocol always answers
// HTTP 200; success and failure are told apart by the result/error members
// of the envelope. Methods are dispatched through an explicit registry
// built at startup rather than by reflection.
package jsonrpc

import "encoding/json"

const Version = "2.0"

// Error codes. The -32000 range is reserved for application errors:
// -32000 covers business and internal failures, -32001 marks an
// unreachable upstream so callers can tell the retryable class apart.
const (
	CodeParse               = -32700
	CodeInvalidRequest      = -32600
	CodeMethodNotFound      = -32601
	CodeInvalidParams       = -32602
	CodeServerError         = -32000
	CodeUpstreamUnavailable = -32001
)

type Request struct {
	Jsonrpc string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

type Response struct {
	Jsonrpc string          `json:"jsonrpc"`
	Result  any             `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewError(code int, message string) *ErrorObject {
	return &ErrorObject{Code: code, Message: message}
}
