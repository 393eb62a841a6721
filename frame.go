package solvent

import "strings"

// Wire protocol constants for the streaming analyze endpoint.
const (
	recordSeparator = "\n\n"
	dataPrefix      = "data: "
	doneSentinel    = "[DONE]"
	errorPrefix     = "[ERROR] "
)

// Parser turns an unbounded sequence of transport fragments into
// protocol events. Fragments may split a record at any byte offset or
// bundle several records; Parser keeps the unresolved tail across
// Feed calls. After a terminal event the parser latches: further
// fragments are discarded.
type Parser struct {
	buf  string
	done bool
}

// NewParser returns a Parser with an empty accumulation buffer.
func NewParser() *Parser {
	return &Parser{}
}

// Feed appends a fragment to the buffer and returns the events for
// every record the fragment completed, in wire order. The trailing
// piece after the last separator is retained for the next call.
func (p *Parser) Feed(fragment string) []Event {
	if p.done {
		return nil
	}
	p.buf += fragment

	var events []Event
	for {
		idx := strings.Index(p.buf, recordSeparator)
		if idx < 0 {
			break
		}
		record := p.buf[:idx]
		p.buf = p.buf[idx+len(recordSeparator):]

		evt, ok := parseRecord(record)
		if !ok {
			continue
		}
		events = append(events, evt)
		if IsTerminal(evt) {
			p.done = true
			p.buf = ""
			break
		}
	}
	return events
}

// Pending returns the unconsumed tail of the transport stream. A
// non-empty tail at end-of-stream is a truncated final record and is
// deliberately discarded: genuine completion is always signaled by an
// explicit terminal record.
func (p *Parser) Pending() string {
	return p.buf
}

// Done reports whether a terminal event has been emitted.
func (p *Parser) Done() bool {
	return p.done
}

// parseRecord maps one delimited record to an event. Records without
// the data prefix are skipped for forward compatibility.
func parseRecord(record string) (Event, bool) {
	payload, ok := strings.CutPrefix(record, dataPrefix)
	if !ok {
		return nil, false
	}
	switch {
	case payload == doneSentinel:
		return EventComplete{}, true
	case strings.HasPrefix(payload, errorPrefix):
		return EventFailure{Message: strings.TrimPrefix(payload, errorPrefix)}, true
	default:
		return EventChunk{Text: StripFences(Decode(payload))}, true
	}
}
