package devtools

import (
	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/runtime"
)

// Report is the JSON form of one finished pass.
type Report struct {
	Seq      uint64         `json:"seq"`
	Pass     int            `json:"pass"`
	Depth    int            `json:"depth"`
	Kind     string         `json:"kind"`
	Patches  []string       `json:"patches,omitempty"`
	Counts   map[string]int `json:"counts,omitempty"`
	Effects  int            `json:"effects"`
	Micros   int64          `json:"durationMicros"`
	Error    string         `json:"error,omitempty"`
	Markup   string         `json:"markup,omitempty"`
	Complete bool           `json:"complete"`
}

// NewReport builds a report from a finished pass.
func NewReport(info *runtime.PassInfo, err error) Report {
	r := Report{
		Pass:     info.Number,
		Depth:    info.Depth,
		Kind:     kind(info),
		Patches:  info.Patches.Strings(),
		Effects:  info.Effects,
		Micros:   info.Duration.Microseconds(),
		Complete: err == nil,
	}
	if len(info.Patches) > 0 {
		r.Counts = make(map[string]int)
		for op, n := range info.Patches.Counts() {
			r.Counts[op.String()] = n
		}
	}
	if err != nil {
		r.Error = err.Error()
	}
	if info.Root != nil {
		r.Markup = dom.InnerMarkup(info.Root.Container())
	}
	return r
}

func kind(info *runtime.PassInfo) string {
	switch {
	case info.Mount():
		return "mount"
	case info.Nested():
		return "nested"
	default:
		return "update"
	}
}
