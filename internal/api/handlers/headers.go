package handlers

import "net/http"

// HeaderAdminToken заголовок с админским секретом бизнеса
const HeaderAdminToken = "X-Admin-Token"

// AdminToken извлекает админский токен из заголовков запроса
func AdminToken(r *http.Request) string {
	return r.Header.Get(HeaderAdminToken)
}
