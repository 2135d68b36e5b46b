package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/encodeous/routesim/state"
)

// SnapshotWriter renders snapshots as plain text:
//
//	<forwarding table entries for node 1>
//	1 1 0
//	2 2 1
//	<message output lines>
//	from 1 to 2 cost 1 hops 1 2 message hello
//	----- At this point, change is applied
type SnapshotWriter struct {
	w io.Writer
}

func NewSnapshotWriter(w io.Writer) *SnapshotWriter {
	return &SnapshotWriter{w: w}
}

func (sw *SnapshotWriter) Write(snap Snapshot) error {
	sb := strings.Builder{}
	if snap.Index > 0 {
		sb.WriteString(state.ChangeSeparator)
		sb.WriteString("\n")
	}
	for _, tbl := range snap.Tables {
		sb.WriteString(fmt.Sprintf("<forwarding table entries for node %d>\n", tbl.Id))
		for _, e := range tbl.Entries {
			sb.WriteString(fmt.Sprintf("%d %d %d\n", e.Dst, e.Nh, e.Cost))
		}
	}
	sb.WriteString("<message output lines>\n")
	for _, tr := range snap.Traces {
		sb.WriteString(FormatTrace(tr))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(sw.w, sb.String())
	return err
}

// FormatTrace renders a single message line.
func FormatTrace(tr Trace) string {
	msg := tr.Message
	if !tr.Reachable {
		return fmt.Sprintf("from %d to %d cost infinite hops unreachable message %s", msg.Src, msg.Dst, msg.Payload)
	}
	hops := make([]string, len(tr.Hops))
	for i, h := range tr.Hops {
		hops[i] = strconv.Itoa(int(h))
	}
	return fmt.Sprintf("from %d to %d cost %d hops %s message %s", msg.Src, msg.Dst, tr.Cost, strings.Join(hops, " "), msg.Payload)
}
