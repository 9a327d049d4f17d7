package snapshot

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"cdinventory/internal/inventory"
)

const (
	formatMarker  = "cdinventory.snapshot"
	formatVersion = 1
)

type document struct {
	Format   string              `json:"format"`
	Version  int                 `json:"version"`
	Records  *[]inventory.Record `json:"records"`
	Checksum string              `json:"checksum"`
}

func checksum(records []inventory.Record) (string, error) {
	canonical, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// validUTF8 replaces invalid byte sequences with U+FFFD, as encoding/json
// would on marshal, so the checksum covers exactly what a reload decodes.
func validUTF8(records []inventory.Record) []inventory.Record {
	out := make([]inventory.Record, len(records))
	for i, record := range records {
		record.Title = strings.ToValidUTF8(record.Title, "\uFFFD")
		record.Artist = strings.ToValidUTF8(record.Artist, "\uFFFD")
		out[i] = record
	}
	return out
}

func encode(records []inventory.Record) ([]byte, error) {
	records = validUTF8(records)
	sum, err := checksum(records)
	if err != nil {
		return nil, fmt.Errorf("checksum records: %w", err)
	}
	data, err := json.MarshalIndent(document{
		Format:   formatMarker,
		Version:  formatVersion,
		Records:  &records,
		Checksum: sum,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// decode parses a snapshot written by encode. Every rejection is a plain
// error; the caller classifies it as corrupt.
func decode(data []byte) ([]inventory.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("file is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after snapshot document")
	}

	if doc.Format != formatMarker {
		return nil, fmt.Errorf("unrecognized format marker %q", doc.Format)
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", doc.Version)
	}
	if doc.Records == nil {
		return nil, errors.New("snapshot has no records array")
	}

	records := *doc.Records
	sum, err := checksum(records)
	if err != nil {
		return nil, fmt.Errorf("checksum records: %w", err)
	}
	if sum != doc.Checksum {
		return nil, fmt.Errorf("checksum mismatch (stored %q, computed %q)", doc.Checksum, sum)
	}
	return records, nil
}
