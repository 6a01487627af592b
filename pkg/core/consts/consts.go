package consts

// contextKey context.WithValue 与 fiber.Locals 使用的键类型，避免与其他包的字符串键冲突
type contextKey string

// TraceKey 请求链路ID在 context / fiber.Locals 中的键
const TraceKey contextKey = "traceId"

// TraceHeaderName 内部调用透传链路ID的请求头
const TraceHeaderName = "X-Trace-Id"

// UserIDKey 当前登录用户ID在 fiber.Locals 中的键
const UserIDKey contextKey = "user_id"
