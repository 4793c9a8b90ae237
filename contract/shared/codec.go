package shared

import (
	"bytes"
	"encoding/binary"
	"errors"

	"alwaysliquid_posts/sdk"
)

var errShortBuffer = errors.New("codec: unexpected end of data")

// Writer is a compact binary encoder for state records.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter spins up a fresh writer so we dont leak old bytes between encodes.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// WriteBool squashes bools into a single byte flag for deterministic payloads.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// WriteUint64 writes big endian numbers so tooling can read them without guessing.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

// WriteVarUint uses varints to keep counts and lens compact.
func (w *Writer) WriteVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// WriteString prefixes its length then dumps UTF-8 directly.
func (w *Writer) WriteString(s string) {
	w.WriteVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// WriteAddress canonicalizes the address before writing.
func (w *Writer) WriteAddress(a sdk.Address) {
	w.WriteString(a.String())
}

// Reader is the decoding counterpart of Writer.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) ReadBool() (bool, error) {
	if r.pos >= len(r.data) {
		return false, errShortBuffer
	}
	b := r.data[r.pos]
	r.pos++
	return b == 1, nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errShortBuffer
	}
	v := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

func (r *Reader) ReadVarUint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errShortBuffer
	}
	r.pos += n
	return v, nil
}

func (r *Reader) ReadString() (string, error) {
	l, err := r.ReadVarUint()
	if err != nil {
		return "", err
	}
	if uint64(len(r.data)-r.pos) < l {
		return "", errShortBuffer
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *Reader) ReadAddress() (sdk.Address, error) {
	s, err := r.ReadString()
	return sdk.Address(s), err
}
