package telemetrytest

import "sync"

type Report struct {
	ID     string
	Params []any
}

// Recorder implements telemetry.API by keeping every report in memory, tests use it to
// assert a component reported (or didn't report) something.
type Recorder struct {
	mutex    sync.Mutex
	Broken   []Report
	Warnings []Report
	Debug    []Report
	Counts   map[string]int64
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Broken = append(r.Broken, Report{ID: id, Params: params})
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Warnings = append(r.Warnings, Report{ID: id, Params: params})
}

func (r *Recorder) ReportDebug(msg string, params ...any) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Debug = append(r.Debug, Report{ID: msg, Params: params})
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.Counts == nil {
		r.Counts = map[string]int64{}
	}
	r.Counts[id] = count
}
