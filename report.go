package scout

import "time"

// Report is the outcome of scanning one profile page. A failed scan
// still produces a Report (OK=false, empty result) so that a batch of
// independent scans can tolerate individual failures.
type Report struct {
	ID          string            `json:"id"`
	URL         string            `json:"url"`
	OK          bool              `json:"ok"`
	Error       string            `json:"error,omitempty"`
	ContentHash string            `json:"contentHash,omitempty"`
	Result      *ClassifiedResult `json:"result"`
	Channel     *Channel          `json:"channel,omitempty"`
	ScannedAt   time.Time         `json:"scannedAt"`
}
