package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/kjson/pkg/json"
	"github.com/shapestone/kjson/pkg/path"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file|-> <path>",
		Short: "Read a dot-separated path out of a JSON object",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGet(args[0], args[1])
		},
	}
}

func runGet(file, p string) error {
	data, err := readInput(file)
	if err != nil {
		return err
	}
	root, err := json.Parse(data)
	if err != nil {
		return err
	}
	defer root.Release()

	v, ok := path.Get(root, p)
	if !ok {
		return fmt.Errorf("path %q not found", p)
	}
	out, err := json.Render(v)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file|-> <path> <value-json>",
		Short: "Write a JSON value at a dot-separated path and print the result",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSet(args[0], args[1], args[2])
		},
	}
}

func runSet(file, p, valueJSON string) error {
	data, err := readInput(file)
	if err != nil {
		return err
	}
	root, err := json.Parse(data)
	if err != nil {
		return err
	}
	defer root.Release()

	val, err := json.Parse([]byte(valueJSON))
	if err != nil {
		return err
	}
	defer val.Release()

	if err := path.Set(root, p, val); err != nil {
		return err
	}

	out, err := json.Render(root)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
