package state

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMissingFields = errors.New("missing fields")
	ErrNegativeNode  = errors.New("node id must not be negative")
	ErrNegativeCost  = errors.New("cost must not be negative")
)

// LineIssue describes an input line that was skipped.
type LineIssue struct {
	Line int
	Text string
	Err  error
}

func (l LineIssue) Error() string {
	return fmt.Sprintf("line %d %q: %v", l.Line, l.Text, l.Err)
}

func (l LineIssue) Unwrap() error {
	return l.Err
}

// IssuesError joins the issues found in file into a single error, or returns nil if there are none.
func IssuesError(file string, issues []LineIssue) error {
	errs := make([]error, 0, len(issues))
	for _, issue := range issues {
		errs = append(errs, fmt.Errorf("%s: %w", file, issue))
	}
	return errors.Join(errs...)
}

// scanRecords calls parse for every non-blank line. Lines that fail to parse are collected as issues.
// Lines have no length limit. On a read error, the records parsed so far are returned with it.
func scanRecords[T any](r io.Reader, parse func(line string) (T, error)) ([]T, []LineIssue, error) {
	records := make([]T, 0)
	issues := make([]LineIssue, 0)

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		// a line cut short by a read error is incomplete and dropped
		if line != "" && (err == nil || err == io.EOF) {
			lineNo++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if strings.TrimSpace(line) != "" {
				rec, perr := parse(line)
				if perr != nil {
					issues = append(issues, LineIssue{Line: lineNo, Text: line, Err: perr})
				} else {
					records = append(records, rec)
				}
			}
		}
		if err == io.EOF {
			return records, issues, nil
		}
		if err != nil {
			return records, issues, err
		}
	}
}

func parseInts(fields []string, n int) ([]int, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrMissingFields, n, len(fields))
	}
	out := make([]int, n)
	for i := range n {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseEndpoints(a, b int) (NodeId, NodeId, error) {
	if a < 0 || b < 0 {
		return 0, 0, ErrNegativeNode
	}
	return NodeId(a), NodeId(b), nil
}

func parseEdge(line string) (Edge, error) {
	v, err := parseInts(strings.Fields(line), 3)
	if err != nil {
		return Edge{}, err
	}
	from, to, err := parseEndpoints(v[0], v[1])
	if err != nil {
		return Edge{}, err
	}
	if v[2] < 0 {
		return Edge{}, ErrNegativeCost
	}
	return Edge{From: from, To: to, Cost: v[2]}, nil
}

func parseChange(line string) (Change, error) {
	v, err := parseInts(strings.Fields(line), 3)
	if err != nil {
		return Change{}, err
	}
	from, to, err := parseEndpoints(v[0], v[1])
	if err != nil {
		return Change{}, err
	}
	if v[2] < 0 && v[2] != RemoveCost {
		return Change{}, ErrNegativeCost
	}
	return Change{From: from, To: to, Cost: v[2]}, nil
}

// cutToken splits s after its first whitespace-delimited token, leaving the separator on the rest.
func cutToken(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func parseMessage(line string) (Message, error) {
	srcTok, rest := cutToken(line)
	dstTok, rest := cutToken(rest)
	if srcTok == "" || dstTok == "" {
		return Message{}, fmt.Errorf("%w: expected source and destination", ErrMissingFields)
	}
	v, err := parseInts([]string{srcTok, dstTok}, 2)
	if err != nil {
		return Message{}, err
	}
	src, dst, err := parseEndpoints(v[0], v[1])
	if err != nil {
		return Message{}, err
	}
	// exactly one separator belongs to the record, the rest is payload
	if rest != "" {
		rest = rest[1:]
	}
	return Message{Src: src, Dst: dst, Payload: rest}, nil
}

// ParseTopology reads "from to cost" records.
func ParseTopology(r io.Reader) ([]Edge, []LineIssue, error) {
	return scanRecords(r, parseEdge)
}

// ParseChanges reads "from to cost" records, where a cost of RemoveCost deletes the edge.
func ParseChanges(r io.Reader) ([]Change, []LineIssue, error) {
	return scanRecords(r, parseChange)
}

// ParseMessages reads "src dst payload" records.
func ParseMessages(r io.Reader) ([]Message, []LineIssue, error) {
	return scanRecords(r, parseMessage)
}

func readFile[T any](path string, parse func(io.Reader) ([]T, []LineIssue, error)) ([]T, []LineIssue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	records, issues, err := parse(f)
	if err != nil {
		return records, issues, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, issues, nil
}

func ReadTopologyFile(path string) ([]Edge, []LineIssue, error) {
	return readFile(path, ParseTopology)
}

func ReadChangesFile(path string) ([]Change, []LineIssue, error) {
	return readFile(path, ParseChanges)
}

func ReadMessagesFile(path string) ([]Message, []LineIssue, error) {
	return readFile(path, ParseMessages)
}
