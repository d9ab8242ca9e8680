package notify

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
)

// DismissHandler drops the notice named by the id form field from the
// requesting session, so it is not replayed on the next page.
type DismissHandler struct {
	board  *Board
	logger lager.Logger
}

func NewDismissHandler(board *Board, logger lager.Logger) *DismissHandler {
	return &DismissHandler{
		board:  board,
		logger: logger,
	}
}

func (h *DismissHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.logger.Session("dismiss-notice")

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if !h.board.Enabled() {
		http.NotFound(w, r)
		return
	}

	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		http.NotFound(w, r)
		return
	}

	id := r.PostFormValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !h.board.Dismiss(cookie.Value, id) {
		log.Debug("unknown-notice", lager.Data{"id": id})
		http.NotFound(w, r)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
