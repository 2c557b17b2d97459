package normaliser

import (
	"encoding/base64"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Normalise recursively rewrites a value reachable from a knowledge
// document into JSON-safe form. It is total: unsupported types pass
// through unchanged, and normalising already-normalised output is a
// no-op.
func Normalise(v any) any {
	switch val := v.(type) {
	case bson.M:
		return normaliseMapping(map[string]any(val))
	case map[string]any:
		return normaliseMapping(val)
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = e.Value
		}
		return normaliseMapping(m)
	case bson.A:
		return normaliseSequence([]any(val))
	case []any:
		return normaliseSequence(val)
	case bson.ObjectID:
		return val.Hex()
	case bson.Binary:
		return base64.StdEncoding.EncodeToString(val.Data)
	case bson.DateTime:
		return val.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case []byte:
		return base64.StdEncoding.EncodeToString(val)
	default:
		return v
	}
}

// NormaliseDocument rewrites a top-level document. A nil document stays
// nil.
func NormaliseDocument(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}
	return normaliseMapping(doc)
}

// normaliseMapping rewrites every value of a mapping, then applies the
// content override: a binary "content" field is routed through the
// classifier using the sibling "header" descriptor, replacing the naive
// base64 rewrite in place.
func normaliseMapping(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = Normalise(v)
	}

	raw, ok := doc["content"]
	if !ok {
		return out
	}
	data, ok := binaryBytes(raw)
	if !ok {
		return out
	}
	mimeType, fileName := contentDescriptor(doc["header"])
	out["content"] = ClassifyContent(mimeType, fileName, data)
	return out
}

func normaliseSequence(seq []any) []any {
	out := make([]any, len(seq))
	for i, v := range seq {
		out[i] = Normalise(v)
	}
	return out
}

// binaryBytes unwraps the raw bytes of a binary-like value. Strings and
// already-normalised content are not binary-like.
func binaryBytes(v any) ([]byte, bool) {
	switch val := v.(type) {
	case bson.Binary:
		return val.Data, true
	case []byte:
		return val, true
	default:
		return nil, false
	}
}

// contentDescriptor reads the (type, file_name) pair from a header
// value. A missing or malformed header yields empty strings, which the
// classifier treats as opaque content.
func contentDescriptor(header any) (mimeType, fileName string) {
	var m map[string]any
	switch h := header.(type) {
	case bson.M:
		m = map[string]any(h)
	case map[string]any:
		m = h
	case bson.D:
		m = make(map[string]any, len(h))
		for _, e := range h {
			m[e.Key] = e.Value
		}
	default:
		return "", ""
	}
	mimeType, _ = m["type"].(string)
	fileName, _ = m["file_name"].(string)
	return mimeType, fileName
}
