package telemetry

import (
	"fmt"
)

// API is an abstraction over logging/metrics.
// Components receive an API instead of logging directly so tests can assert on what
// a component reported.
type API interface {
	// ReportBroken reports a component that has broken in a way that should be addressed,
	// usually because the page it scrapes changed shape or the request failed.
	//
	// The `id` names the component, not the specific line that broke: a failing listing fetch
	// is reported as `client.valuations`, with the underlying error passed as a param.
	//
	// Formatting rules:
	// 1) all lowercase
	// 2) use underscores for large components
	// 3) use dashes for methods part of a larger component
	ReportBroken(id string, params ...any)

	// ReportWarning reports something that does not stop the run but may be worth a look,
	// like a row that was skipped.
	ReportWarning(id string, params ...any)

	// ReportDebug reports debug information that is hidden unless running verbosely.
	ReportDebug(msg string, params ...any)

	// ReportCount reports the current count of something at the current time, these counts
	// should not be summed but interpreted as points of data over time.
	ReportCount(id string, count int64)
}

// OrSlog returns tel, or SlogAPI when tel is nil so zero-value components still report.
func OrSlog(tel API) API {
	if tel == nil {
		return SlogAPI{}
	}
	return tel
}

// ScopedAPI attaches a namespace to every report of an inner API, like a "sub" logger.
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: OrSlog(inner)}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(fmt.Sprintf("%s: %s", s.namespace, msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s: %s", s.namespace, id), count)
}
