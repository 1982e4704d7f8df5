// Package format writes CLI command output. Strict JSON only: anything a
// command prints on stdout must stay machine-parseable, hints and prose
// belong on stderr.
package format

import (
	"encoding/json"
	"fmt"
	"io"
)

func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
