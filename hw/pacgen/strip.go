package pacgen

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/chaseadam/gateware/emu/log"
)

// Strip copies src to dst line by line, dropping the lines that exactly
// match one of deny. Other lines are kept in order. Line endings are
// normalized: a trailing \r is dropped and every line, the last one
// included, ends with a single \n. It returns the number of dropped lines.
func Strip(dst io.Writer, src io.Reader, deny []string) (removed int, err error) {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	bw := bufio.NewWriter(dst)
	for sc.Scan() {
		line := sc.Text()
		if slices.Contains(deny, line) {
			log.ModGen.DebugZ("skipping line").String("line", line).End()
			removed++
			continue
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return removed, err
		}
	}
	if err := sc.Err(); err != nil {
		return removed, err
	}
	return removed, bw.Flush()
}
