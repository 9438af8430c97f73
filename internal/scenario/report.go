// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Report writes the contents of every list in st to w, either as
// YAML (format "yaml") or as one "name: [values]" line per list
// (format "text" or "").
func (s State) Report(w io.Writer, format string) error {
	switch format {
	case "yaml":
		out := make(map[string][]int, len(s))
		for name, l := range s {
			out[name] = l.Values()
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for _, name := range s.Names() {
			if _, err := fmt.Fprintf(w, "%v: %v\n", name, s[name]); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unsupported report format %q", format)
}
