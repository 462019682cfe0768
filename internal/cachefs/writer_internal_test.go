package cachefs

import (
	"errors"
	"io"
	"testing"
)

type shortWriter struct{ limit int }

func (w shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		return w.limit, io.ErrShortWrite
	}
	return len(p), nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("device gone") }

func TestWritePayloadReportsShortWrite(t *testing.T) {
	ok, err := writePayload(shortWriter{limit: 3}, []byte("abcdef"))
	if err != nil {
		t.Fatalf("expected short write without error, got %v", err)
	}
	if ok {
		t.Fatal("expected short write to report failure")
	}

	ok, err = writePayload(shortWriter{limit: 10}, []byte("abcdef"))
	if err != nil || !ok {
		t.Fatalf("expected complete write, got %v %v", ok, err)
	}
}

func TestWritePayloadPropagatesIOError(t *testing.T) {
	ok, err := writePayload(failingWriter{}, []byte("x"))
	if err == nil || ok {
		t.Fatalf("expected error, got %v %v", ok, err)
	}
}
