package csvfile

// streaming.go prepares the raw byte stream before it reaches encoding/csv.
//
//   - bomReader: drops a leading UTF-8 BOM written by spreadsheet exports
//   - countingReader: counts bytes for the load log line
//
// Bytes are otherwise passed through untouched; the reader rejects invalid
// UTF-8 instead of rewriting it.

import "io"

var utf8BOM = [3]byte{0xEF, 0xBB, 0xBF}

// bomReader strips a UTF-8 BOM from the start of the stream.
type bomReader struct {
	r       io.Reader
	checked bool
	head    []byte // Bytes read during the BOM check that still need returning
}

func newBOMReader(r io.Reader) *bomReader {
	return &bomReader{r: r}
}

func (b *bomReader) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true

		var buf [3]byte
		n, err := io.ReadFull(b.r, buf[:])
		if n == 3 && buf == utf8BOM {
			n = 0
		}
		b.head = append(b.head, buf[:n]...)

		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return 0, err
		}
		if err != nil && len(b.head) == 0 {
			return 0, io.EOF
		}
	}

	if len(b.head) > 0 {
		n := copy(p, b.head)
		b.head = b.head[n:]
		return n, nil
	}

	return b.r.Read(p)
}

// countingReader tracks the number of bytes read.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// wrapSource applies BOM stripping, then counting.
func wrapSource(r io.Reader) *countingReader {
	return &countingReader{r: newBOMReader(r)}
}
