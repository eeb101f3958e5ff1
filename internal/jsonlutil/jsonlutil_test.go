package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"
)

type row struct {
	N int `json:"n"`
}

func encodeRow(enc *json.Encoder, r row) error { return enc.Encode(r) }

func TestStartWritesOneLinePerValue(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[row](&buf, 2, encodeRow, func(error) bool { return false })
	for i := 1; i <= 3; i++ {
		in <- row{N: i}
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "{\"n\":1}\n{\"n\":2}\n{\"n\":3}\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestStartSwallowsBrokenPipeAndDrains(t *testing.T) {
	in, done := Start[row](closedWriter{}, 1, encodeRow, func(err error) bool {
		return errors.Is(err, io.ErrClosedPipe)
	})
	for i := 0; i < 5; i++ {
		in <- row{N: i}
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe must not be reported, got %v", err)
	}
}
