package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/roach88/rwalk/internal/ir"
	"github.com/roach88/rwalk/internal/walk"
)

// TimestampLayout formats record timestamps (UTC, microseconds).
const TimestampLayout = "2006-01-02 15:04:05.000000"

// RunRecord is a walk plus the context it was produced in.
type RunRecord struct {
	Data       walk.Positions `json:"data"`
	Parameters walk.Params    `json:"parameters"`
	Timestamp  time.Time      `json:"timestamp"`
	Revision   string         `json:"revision"`
	System     string         `json:"system"`
}

// toIR converts the record into its canonical value tree.
func (r *RunRecord) toIR() ir.IRObject {
	return ir.IRObject{
		"data": ir.IntArray(r.Data),
		"parameters": ir.IRObject{
			"count": ir.IRInt(r.Parameters.Count),
			"x0":    ir.IRInt(r.Parameters.X0),
			"step":  ir.IRInt(r.Parameters.Step),
			"seed":  ir.IRInt(r.Parameters.Seed),
		},
		"timestamp": ir.IRString(r.Timestamp.UTC().Format(TimestampLayout)),
		"revision":  ir.IRString(r.Revision),
		"system":    ir.IRString(r.System),
	}
}

// CanonicalJSON returns the record as canonical JSON.
func (r *RunRecord) CanonicalJSON() ([]byte, error) {
	return ir.MarshalCanonical(r.toIR())
}

// Digest returns the content address of the record.
func (r *RunRecord) Digest() (string, error) {
	return ir.Digest(ir.DomainRecord, r.toIR())
}

// WalkDigest returns the content address of a walk on its own. Runs of
// the same parameters share it even though their records differ.
func WalkDigest(data walk.Positions) (string, error) {
	return ir.Digest(ir.DomainWalk, ir.IntArray(data))
}

// Dump renders the record as a single-line mapping:
//
//	{'data': [-1, 0], 'parameters': {'count': 2, 'x0': 0, 'step': 1, 'seed': 1}, 'timestamp': '...', 'revision': '...', 'system': '...'}
//
// Keys keep this fixed order. The format is for humans; nothing parses it.
func (r *RunRecord) Dump() string {
	var b strings.Builder
	b.WriteString("{'data': ")
	b.WriteString(r.Data.String())
	fmt.Fprintf(&b, ", 'parameters': {'count': %d, 'x0': %d, 'step': %d, 'seed': %d}",
		r.Parameters.Count, r.Parameters.X0, r.Parameters.Step, r.Parameters.Seed)
	b.WriteString(", 'timestamp': ")
	b.WriteString(quote(r.Timestamp.UTC().Format(TimestampLayout)))
	b.WriteString(", 'revision': ")
	b.WriteString(quote(r.Revision))
	b.WriteString(", 'system': ")
	b.WriteString(quote(r.System))
	b.WriteString("}")
	return b.String()
}

// quote wraps s in single quotes, escaping backslashes, quotes and
// non-printable characters.
func quote(s string) string {
	q := strconv.Quote(s)
	inner := q[1 : len(q)-1]
	inner = strings.ReplaceAll(inner, `\"`, `"`)
	inner = strings.ReplaceAll(inner, `'`, `\'`)
	return "'" + inner + "'"
}
