package core

// Request is the inbound body wrapper. Every write endpoint accepts
// `{"data": <resource or array of resources>}` and nothing else.
type Request[T any] struct {
	Data T `json:"data"`
}

// Envelope is the success response shape: the payload plus navigation
// metadata. It is never combined with Errors in a single body.
type Envelope[T any] struct {
	Data  T      `json:"data"`
	Links string `json:"links"`
}

// ErrorEnvelope is the failure response shape: an ordered list of
// one-or-more problem descriptors.
type ErrorEnvelope struct {
	Errors []APIError `json:"errors"`
}

// APIError describes a single problem. Status is the string form of the
// HTTP status class the problem belongs to ("400", "404", ...), Detail a
// human-readable message.
type APIError struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// Ok wraps a payload in the success envelope.
func Ok[T any](data T, links string) Envelope[T] {
	return Envelope[T]{Data: data, Links: links}
}

// Fail builds an error envelope with a single descriptor.
func Fail(status, detail string) ErrorEnvelope {
	return ErrorEnvelope{Errors: []APIError{{Status: status, Detail: detail}}}
}
