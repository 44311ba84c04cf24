package export

import "fmt"

// Artifact is a generated text file ready to be offered to the user.
type Artifact struct {
	Filename string
	Content  string
}

// Severity classifies a notification.
type Severity string

const (
	SevInfo    Severity = "info"
	SevWarning Severity = "warning"
	SevError   Severity = "error"
)

// Notify receives user-facing messages from the serializers: result
// counts, duplicate-name warnings, validation errors. Serializers never
// panic across their boundary; they notify and return an error instead.
type Notify func(message string, severity Severity)

// Sink delivers a finished artifact to the user. The CLI writes files;
// the HTTP server streams the response body.
type Sink interface {
	Offer(a Artifact) error
}

// Exporter carries the option set and the boundary collaborators shared
// by all four serializers.
type Exporter struct {
	opts   Options
	mobs   MobSampler
	notify Notify
}

// NewExporter builds an Exporter. mobs may be nil unless random mob
// spawn is enabled; notify may be nil to discard notifications.
func NewExporter(opts Options, mobs MobSampler, notify Notify) *Exporter {
	if notify == nil {
		notify = func(string, Severity) {}
	}
	return &Exporter{opts: opts, mobs: mobs, notify: notify}
}

func (e *Exporter) notifyf(sev Severity, format string, args ...any) {
	e.notify(fmt.Sprintf(format, args...), sev)
}
