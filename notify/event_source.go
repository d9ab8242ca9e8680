package notify

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/vito/go-sse/sse"
)

var ErrStreamClosed = errors.New("notice stream closed")

// EventSource provides sequential access to a notice stream.
type EventSource interface {
	Next() (Notice, error)
	Close() error
}

type eventSource struct {
	rawSource *sse.ReadCloser
}

func NewEventSource(raw io.ReadCloser) EventSource {
	return &eventSource{
		rawSource: sse.NewReadCloser(raw),
	}
}

func (e *eventSource) Next() (Notice, error) {
	for {
		rawEvent, err := e.rawSource.Next()
		if err != nil {
			if err == io.EOF {
				return Notice{}, ErrStreamClosed
			}
			return Notice{}, err
		}

		if rawEvent.Name != NoticeEventName {
			continue
		}

		payload := noticePayload{}
		err = json.Unmarshal(rawEvent.Data, &payload)
		if err != nil {
			return Notice{}, err
		}
		return payload.notice(), nil
	}
}

func (e *eventSource) Close() error {
	return e.rawSource.Close()
}
