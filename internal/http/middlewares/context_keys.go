package middlewares

// gin context keys set by the request middleware.
const (
	CtxRequestID = "request_id"
	CtxUserID    = "user_id"
)
