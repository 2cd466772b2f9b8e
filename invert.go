package polylla

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InvertFaces copies an OFF mesh from r to w with the vertex order of
// every face reversed. The OFF line and the vertex lines are copied
// with their fields re-joined by single spaces; the count line keeps
// the vertex and face counts and writes the edge count as 0. A
// trailing color triplet on a face line is preserved in place.
// Comment and blank lines are dropped.
func InvertFaces(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)

	fields, err := nextFields(sc)
	if err != nil {
		return err
	}
	if fields[0] != "OFF" {
		return ErrNotOFF
	}
	fmt.Fprintln(bw, "OFF")

	fields, err = nextFields(sc)
	if err != nil {
		return err
	}
	if len(fields) < 2 {
		return ErrBadCounts
	}
	nverts, err1 := strconv.Atoi(fields[0])
	npolys, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return ErrBadCounts
	}
	fmt.Fprintf(bw, "%d %d 0\n", nverts, npolys)

	for i := 0; i < nverts; i++ {
		fields, err = nextFields(sc)
		if err != nil {
			return err
		}
		fmt.Fprintln(bw, strings.Join(fields, " "))
	}
	for i := 0; i < npolys; i++ {
		fields, err = nextFields(sc)
		if err != nil {
			return err
		}
		size, err1 := strconv.Atoi(fields[0])
		if err1 != nil || size < 1 || len(fields) < 1+size {
			return fmt.Errorf("%w: face %d", ErrBadFace, i)
		}
		out := make([]string, 0, len(fields))
		out = append(out, fields[0])
		for j := size; j >= 1; j-- {
			out = append(out, fields[j])
		}
		out = append(out, fields[1+size:]...)
		fmt.Fprintln(bw, strings.Join(out, " "))
	}
	return bw.Flush()
}
