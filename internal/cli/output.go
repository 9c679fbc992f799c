package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
)

// writeRaw prints v as indented JSON. With --query only the selected value
// is printed: strings and numbers bare, objects and arrays as JSON.
func (c *CLI) writeRaw(w io.Writer, v any) error {
	data, err := encodeJSON(v)
	if err != nil {
		return err
	}
	if c.flags.query == "" {
		_, err = w.Write(data)
		return err
	}

	res := gjson.GetBytes(data, c.flags.query)
	if !res.Exists() {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "query %q matched nothing", c.flags.query)
	}
	_, err = fmt.Fprintln(w, res.String())
	return err
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, apierrors.Wrap(apierrors.ErrCodeInternal, err, "encode result")
	}
	return buf.Bytes(), nil
}

// view gives path access to a decoded payload for display.
type view struct {
	raw []byte
}

func newView(v any) view {
	data, err := json.Marshal(v)
	if err != nil {
		return view{}
	}
	return view{raw: data}
}

func (v view) get(path string) gjson.Result { return gjson.GetBytes(v.raw, path) }

func (v view) str(path string) string { return v.get(path).String() }

func (v view) num(path string) string {
	r := v.get(path)
	if !r.Exists() || r.Type == gjson.Null {
		return ""
	}
	return fmt.Sprintf("%d", r.Int())
}
