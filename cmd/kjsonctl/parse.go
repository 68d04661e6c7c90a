package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/kjson/pkg/json"
)

func newParseCmd() *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a JSON document and report its shape, or re-render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runParse(args[0], compact)
		},
	}
	cmd.Flags().BoolVar(&compact, "render", false, "re-render the parsed document instead of summarizing it")
	return cmd
}

func runParse(path string, render bool) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	limits, err := loadLimits(limitsPath)
	if err != nil {
		return err
	}

	v, err := json.ParseWithLimits(data, limits)
	if err != nil {
		cliLogger{}.Logf(json.SeverityError, "parse failed: %v", err)
		return err
	}
	defer v.Release()

	if render {
		out, err := json.Render(v)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%s %s\n", bold("kind:"), v.Kind())
	if v.Kind() == json.KindObject || v.Kind() == json.KindArray {
		fmt.Printf("%s %d\n", bold("size:"), v.Len())
	}
	fmt.Printf("%s %s\n", green("ok"), path)
	return nil
}
