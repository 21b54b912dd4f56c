// Package notify carries transient user-facing alerts (toast style messages)
// from form helpers to whatever surface the host application provides.
package notify

import (
	"log"
	"sync"
)

// Indicator is the colour hint attached to an alert.
type Indicator string

const (
	IndicatorYellow Indicator = "yellow"
	IndicatorRed    Indicator = "red"
	IndicatorGreen  Indicator = "green"
	IndicatorBlue   Indicator = "blue"
)

// Alert is a single transient notification.
type Alert struct {
	Message   string    `json:"message"`
	Indicator Indicator `json:"indicator"`
}

// Notifier displays alerts to the user.
type Notifier interface {
	Notify(alert Alert)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Alert)

func (fn NotifierFunc) Notify(alert Alert) {
	if fn == nil {
		return
	}
	fn(alert)
}

// Discard drops every alert.
var Discard Notifier = NotifierFunc(func(Alert) {})

// Recorder keeps every alert it receives. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	alerts []Alert
}

func (r *Recorder) Notify(alert Alert) {
	r.mu.Lock()
	r.alerts = append(r.alerts, alert)
	r.mu.Unlock()
}

// Alerts returns a copy of the recorded alerts in arrival order.
func (r *Recorder) Alerts() []Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Alert(nil), r.alerts...)
}

// Reset forgets all recorded alerts.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.alerts = nil
	r.mu.Unlock()
}

// LogNotifier writes alerts to a standard logger. A nil Logger uses the
// package-level log output.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Notify(alert Alert) {
	if n.Logger == nil {
		log.Printf("[%s] %s", alert.Indicator, alert.Message)
		return
	}
	n.Logger.Printf("[%s] %s", alert.Indicator, alert.Message)
}
