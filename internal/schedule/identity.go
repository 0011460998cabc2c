package schedule

import (
	"bytes"
	"encoding/binary"
	"sort"
	"time"

	"github.com/google/uuid"

	"planweaver/internal/core"
)

// planIDNamespace scopes content-derived plan IDs so they can never collide
// with UUIDs minted for other purposes.
var planIDNamespace = uuid.MustParse("5b1c9df2-0a4e-4f3b-9c47-2d8b6e01a7c3")

// PlanID derives the plan's identity from the input content.
//
// The ID is a name-based UUID over a canonical encoding of the input, so it
// is stable across runs, architectures and blocked-interval insertion order.
// Task order is part of the encoding because input order is a semantic
// ordering tie-breaker.
func PlanID(in Input) string {
	var buf bytes.Buffer

	writeField := func(data []byte) {
		var length [8]byte
		binary.BigEndian.PutUint64(length[:], uint64(len(data)))
		buf.Write(length[:])
		buf.Write(data)
	}
	writeInt := func(v int64) {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(v))
		writeField(b[:])
	}
	writeTime := func(t time.Time) { writeInt(t.UTC().Unix()) }

	writeTime(in.PlanningStart)
	writeInt(int64(in.Window.Start))
	writeInt(int64(in.Window.End))
	writeField([]byte(in.TieBreak))

	blocked := make([]core.BlockedInterval, len(in.Blocked))
	copy(blocked, in.Blocked)
	sort.Slice(blocked, func(i, j int) bool {
		a, b := blocked[i], blocked[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.Label < b.Label
	})
	writeInt(int64(len(blocked)))
	for _, b := range blocked {
		writeTime(b.Start)
		writeTime(b.End)
		writeField([]byte(b.Label))
	}

	writeInt(int64(len(in.Tasks)))
	for _, t := range in.Tasks {
		writeField([]byte(t.ID))
		writeField([]byte(t.Title))
		writeInt(int64(t.Duration / time.Minute))
		if t.Deadline != nil {
			writeTime(*t.Deadline)
		} else {
			writeField(nil)
		}
		writeInt(int64(t.Priority))
		writeInt(int64(len(t.DependsOn)))
		for _, dep := range t.DependsOn {
			writeField([]byte(dep))
		}
	}

	return uuid.NewSHA1(planIDNamespace, buf.Bytes()).String()
}
