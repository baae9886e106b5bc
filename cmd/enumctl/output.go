/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

type tabular interface {
	header() []string
	row() []string
}

func (typeView) header() []string { return []string{"NAME", "GO TYPE", "STATE", "CONSTANTS"} }
func (v typeView) row() []string {
	return []string{v.Name, v.GoType, v.State, strconv.Itoa(v.Constants)}
}

func (constantView) header() []string { return []string{"ORDINAL", "NAME", "TYPE"} }
func (v constantView) row() []string {
	return []string{strconv.Itoa(v.Ordinal), v.Name, v.Type}
}

func checkFormat(format string) error {
	switch format {
	case "", formatTable, formatYAML, formatJSON:
		return nil
	default:
		return fmt.Errorf("enumctl: unknown output format %q", format)
	}
}

// resolveFormat picks a table for terminals and YAML for everything else
// when no format was requested.
func resolveFormat(w io.Writer, format string) string {
	if format != "" {
		return format
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return formatTable
	}
	return formatYAML
}

func render[T tabular](w io.Writer, format string, rows []T) error {
	switch resolveFormat(w, format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		var zero T
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(zero.header(), "\t"))
		for _, r := range rows {
			fmt.Fprintln(tw, strings.Join(r.row(), "\t"))
		}
		return tw.Flush()
	}
}
