package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/shapestone/kjson/pkg/json"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file|->",
		Short: "Print a JSON object's top-level members as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	v, err := json.Parse(data)
	if err != nil {
		return err
	}
	defer v.Release()

	if v.Kind() != json.KindObject {
		return fmt.Errorf("inspect requires a top-level object, got %s", v.Kind())
	}

	headerFmt := func(format string, vals ...any) string { return bold(fmt.Sprintf(format, vals...)) }
	tbl := table.New("Key", "Kind", "Size")
	tbl.WithHeaderFormatter(headerFmt)

	v.ForEachMember(func(key string, val *json.Value) bool {
		tbl.AddRow(key, val.Kind().String(), sizeOf(val))
		return true
	})
	tbl.Print()
	return nil
}

func sizeOf(v *json.Value) string {
	switch v.Kind() {
	case json.KindObject, json.KindArray:
		return fmt.Sprintf("%d", v.Len())
	default:
		return "-"
	}
}
