package model

import "time"

// RequestLog is one append-only record per inbound HTTP request.
// Records are immutable once written; there is no update or delete path.
type RequestLog struct {
	ID            int       `json:"id"`
	RequestMethod string    `json:"requestMethod"`
	RequestPath   string    `json:"requestPath"`
	StatusCode    int       `json:"statusCode"`
	ElapsedMillis int64     `json:"elapsedMilliseconds"`
	RequestedAt   time.Time `json:"requestedAt"`
}

func (RequestLog) Table() string { return "request_logs" }

func (r RequestLog) Key() int { return r.ID }

func (r RequestLog) WithKey(id int) RequestLog {
	r.ID = id
	return r
}
