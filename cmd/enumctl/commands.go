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
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"dirpx.dev/enum"
)

// ErrUnknownType is returned when no registered enum type has the requested name.
var ErrUnknownType = errors.New("enumctl: unknown enum type")

type typeView struct {
	Name      string `json:"name" yaml:"name"`
	GoType    string `json:"go_type" yaml:"go_type"`
	State     string `json:"state" yaml:"state"`
	Constants int    `json:"constants" yaml:"constants"`
}

type constantView struct {
	Type    string `json:"type" yaml:"type"`
	Name    string `json:"name" yaml:"name"`
	Ordinal int    `json:"ordinal" yaml:"ordinal"`
}

func typeViews() []typeView {
	entries := enum.Registry().Entries()
	views := make([]typeView, 0, len(entries))
	for _, e := range entries {
		views = append(views, typeView{
			Name:      enum.TypeName(e.Type),
			GoType:    e.Type.String(),
			State:     e.State.String(),
			Constants: e.Len,
		})
	}
	return views
}

// lookupType accepts the display name of a type or its Go type string.
func lookupType(name string) (reflect.Type, error) {
	if t, ok := enum.TypeByName(name); ok {
		return t, nil
	}
	for _, e := range enum.Registry().Entries() {
		if e.Type.String() == name {
			return e.Type, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func constantViews(name string) ([]constantView, error) {
	t, err := lookupType(name)
	if err != nil {
		return nil, err
	}
	values, err := enum.Values(t)
	if err != nil {
		return nil, err
	}
	display := enum.TypeName(t)
	views := make([]constantView, len(values))
	for i, c := range values {
		views[i] = constantView{Type: display, Name: c.Name(), Ordinal: c.Ordinal()}
	}
	return views, nil
}

func typesCmd(format func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered enum types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.OutOrStdout(), format(), typeViews())
		},
	}
}

func listCmd(format func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "list <type>",
		Short: "List the constants of an enum type in declaration order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := constantViews(args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format(), views)
		},
	}
}

func getCmd(format func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <type> <name>",
		Short: "Show one constant of an enum type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lookupType(args[0])
			if err != nil {
				return err
			}
			c, err := enum.Get(t, args[1])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format(), []constantView{
				{Type: enum.TypeName(t), Name: c.Name(), Ordinal: c.Ordinal()},
			})
		},
	}
}
