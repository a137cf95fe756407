package httpapi

import (
	"net/http"
	"strings"
)

// demoUserID stands in for a caller identity when no X-User-ID header is
// present, so the API stays usable without an account service.
const demoUserID = "demo-player"

const userIDHeader = "X-User-ID"

func requestUserID(r *http.Request) string {
	userID := strings.TrimSpace(r.Header.Get(userIDHeader))
	if userID == "" {
		return demoUserID
	}
	return userID
}
