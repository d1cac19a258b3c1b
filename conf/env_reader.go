package conf

import (
	"bufio"
	"io"
	"os"
)

// NewEnvExpandedReader expands ${VAR} references line by line, so the
// config file can reference the environment instead of holding values.
func NewEnvExpandedReader(origin io.Reader) io.Reader {
	return &envExpandedReader{origin: bufio.NewReader(origin)}
}

type envExpandedReader struct {
	origin *bufio.Reader
	buf    []byte
	done   bool
}

func (r *envExpandedReader) Read(p []byte) (n int, err error) {
	for len(r.buf) < len(p) && !r.done {
		line, err := r.origin.ReadString('\n')
		r.buf = append(r.buf, os.ExpandEnv(line)...)

		if err == io.EOF {
			r.done = true
			break
		}
		if err != nil {
			return 0, err
		}
	}

	n = copy(p, r.buf)
	r.buf = r.buf[n:]

	if n == 0 && r.done {
		return 0, io.EOF
	}

	return n, nil
}
