package notify

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/vito/go-sse/sse"
)

const NoticeEventName = "notice"

type noticePayload struct {
	ID       string    `json:"id"`
	Level    Level     `json:"level"`
	Message  string    `json:"message"`
	Position string    `json:"position"`
	Timeout  int64     `json:"timeout"`
	Created  time.Time `json:"created"`
}

func newNoticePayload(n Notice) noticePayload {
	return noticePayload{
		ID:       n.ID,
		Level:    n.Level,
		Message:  n.Message,
		Position: n.Position,
		Timeout:  n.Timeout.Milliseconds(),
		Created:  n.Created,
	}
}

func (p noticePayload) notice() Notice {
	return Notice{
		ID:       p.ID,
		Level:    p.Level,
		Message:  p.Message,
		Position: p.Position,
		Timeout:  time.Duration(p.Timeout) * time.Millisecond,
		Created:  p.Created,
	}
}

// StreamHandler serves the notices of the requesting session as server-sent
// events, starting with the ones still on screen.
type StreamHandler struct {
	board  *Board
	logger lager.Logger
}

func NewStreamHandler(board *Board, logger lager.Logger) *StreamHandler {
	return &StreamHandler{
		board:  board,
		logger: logger,
	}
}

func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.logger.Session("event-stream")

	if !h.board.Enabled() {
		http.NotFound(w, r)
		return
	}

	session, err := Session(w, r)
	if err != nil {
		log.Error("failed-to-establish-session", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error("streaming-unsupported", errors.New("response writer cannot flush"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	source, err := h.board.Subscribe()
	if err != nil {
		log.Error("failed-to-subscribe-to-notices", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	defer source.Close()

	go func() {
		<-r.Context().Done()
		source.Close()
	}()

	w.Header().Add("Content-Type", "text/event-stream; charset=utf-8")
	w.Header().Add("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Add("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	eventID := 0
	write := func(n Notice) error {
		data, err := json.Marshal(newNoticePayload(n))
		if err != nil {
			return err
		}

		err = sse.Event{
			ID:   strconv.Itoa(eventID),
			Name: NoticeEventName,
			Data: data,
		}.Write(w)
		if err != nil {
			return err
		}

		flusher.Flush()
		eventID++
		return nil
	}

	// A notice pushed after Subscribe but before Active is both replayed and
	// queued on the source; it is sent once.
	replayed := map[string]struct{}{}
	for _, n := range h.board.Active(session) {
		if err := write(n); err != nil {
			log.Error("failed-to-write-event", err)
			return
		}
		replayed[n.ID] = struct{}{}
	}

	for {
		event, err := source.Next()
		if err != nil {
			log.Debug("event-source-closed", lager.Data{"reason": err.Error()})
			return
		}

		notice, ok := event.(Notice)
		if !ok || notice.Session != session {
			continue
		}
		if _, seen := replayed[notice.ID]; seen {
			delete(replayed, notice.ID)
			continue
		}

		if err := write(notice); err != nil {
			log.Error("failed-to-write-event", err)
			return
		}
	}
}
