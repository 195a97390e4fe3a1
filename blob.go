package uszipcode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// List and statistic columns are stored as zlib compressed JSON documents.

func decodeBlob(b []byte, v any) error {
	if len(b) == 0 {
		return nil
	}
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("open compressed blob: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return fmt.Errorf("inflate blob: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode blob: %w", err)
	}
	return nil
}

func encodeBlob(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode blob: %w", err)
	}
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("deflate blob: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("deflate blob: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeStringList decodes a list column. Null columns decode to nil.
func decodeStringList(b []byte) ([]string, error) {
	var out []string
	if err := decodeBlob(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// encodeStringList encodes a list column; nil lists are stored as NULL.
func encodeStringList(list []string) ([]byte, error) {
	if list == nil {
		return nil, nil
	}
	return encodeBlob(list)
}
