package httpx

// Cookie names shared by auth handlers and middleware.
const (
	sessionCookieName = "session_id"
	stateCookieName   = "oauth_state"
	nonceCookieName   = "oauth_nonce"
	redirectCookie    = "post_login_redirect"
)

// oauthCookieMaxAge bounds how long the state/nonce/redirect cookies live.
const oauthCookieMaxAge = 600 // 10 minutes
