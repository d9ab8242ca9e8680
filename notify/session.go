package notify

import (
	"net/http"

	uuid "github.com/nu7hatch/gouuid"
)

const SessionCookie = "doorsys_session"

// Session returns the browser session id, issuing a new cookie when the
// request carries none. The issued cookie is also added to r so later calls
// for the same request agree.
func Session(w http.ResponseWriter, r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	guid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	cookie = &http.Cookie{
		Name:     SessionCookie,
		Value:    guid.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	r.AddCookie(cookie)

	return cookie.Value, nil
}
