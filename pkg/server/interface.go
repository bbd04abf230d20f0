/*
Package server implements msgpack IPC for the word list over stdin/stdout.

The protocol is request/response: clients write binary msgpack messages to
the server's stdin and read responses from its stdout. Messages carry an ID
the response echoes back, an op, and op-specific fields. Processing is
synchronous, one request at a time, which matches the single caller the word
list is built for.

# Ops

"add" inserts a word at its sorted position. The word is normalized (NFC,
trimmed) before it reaches the list and duplicates are acknowledged without
inserting:

	{"id": "r1", "op": "add", "w": "banana"}
	{"id": "r1", "status": "ok", "size": 4}

"search" is an exact lookup. A miss is a normal response with f=false, not an
error; clients fall back to "closest":

	{"id": "r2", "op": "search", "w": "banana"}
	{"id": "r2", "f": true, "w": "banana", "i": 1}

"closest" returns the nearest entry with an upper bound bias. "suggest"
returns live completions for a typed prefix, shortest first:

	{"id": "r3", "op": "suggest", "w": "ban", "l": 8}
	{"id": "r3", "s": ["band", "banana"], "c": 2, "t": 57}

"sample" draws random words from the configured source file and inserts the
ones not already present. "list" returns the entries in order, "clear"
empties the list, "health" reports status and size.

Failures (unknown op, empty word, sampler errors) come back as an error
response with a code in the 4xx/5xx convention.
*/
package server

// Request is the envelope for every client message.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Word  string `msgpack:"w,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
	Count int    `msgpack:"n,omitempty"`
}

// StatusResponse acknowledges add, clear and health ops.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Size   int    `msgpack:"size"`
}

// SearchResponse answers search and closest ops. Index is -1 when the op has
// no position to report.
type SearchResponse struct {
	ID    string `msgpack:"id"`
	Found bool   `msgpack:"f"`
	Word  string `msgpack:"w,omitempty"`
	Index int    `msgpack:"i"`
}

// SuggestResponse carries completions for a prefix. TimeTaken is in
// microseconds.
type SuggestResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// SampleResponse reports the outcome of a sample op.
type SampleResponse struct {
	ID      string   `msgpack:"id"`
	Added   []string `msgpack:"a"`
	Skipped int      `msgpack:"k"`
	Size    int      `msgpack:"size"`
}

// ListResponse returns the entries in their sorted order.
type ListResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"s"`
	Count int      `msgpack:"c"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
