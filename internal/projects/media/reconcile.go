// Package media computes the image list persisted with a project record.
// Everything here is pure: string and slice in, slice out, no I/O.
package media

import "encoding/json"

// DecodeList decodes the stored image_urls value. The column historically
// held a single URL as a plain string, so anything that fails to decode as a
// JSON string array is treated as a one-element list of the raw value.
func DecodeList(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		return []string{raw}
	}
	if urls == nil {
		return []string{}
	}
	return urls
}

// EncodeList encodes an image list for storage in the string-typed column.
func EncodeList(urls []string) string {
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		// A []string cannot fail to marshal.
		return "[]"
	}
	return string(b)
}

// ParseKept parses the client-supplied keep-list. Unlike DecodeList there is
// no raw-string fallback: a keep-list that is not a JSON string array
// contributes nothing rather than failing the request.
func ParseKept(keptJSON string) []string {
	if keptJSON == "" {
		return []string{}
	}

	var urls []string
	if err := json.Unmarshal([]byte(keptJSON), &urls); err != nil || urls == nil {
		return []string{}
	}
	return urls
}

// Reconcile returns the final image list for an update: the kept subset of
// the prior images, in client order, followed by this request's uploads in
// upload order. Duplicates are preserved as-is.
func Reconcile(keptJSON string, uploaded []string) []string {
	kept := ParseKept(keptJSON)
	out := make([]string, 0, len(kept)+len(uploaded))
	out = append(out, kept...)
	out = append(out, uploaded...)
	return out
}
