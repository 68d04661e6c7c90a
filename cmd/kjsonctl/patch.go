package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/kjson/pkg/json"
)

func newPatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patch <target> <patch>",
		Short: "Apply a JSON merge patch to a target document",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPatch(args[0], args[1])
		},
	}
}

func runPatch(targetPath, patchPath string) error {
	target, err := readInput(targetPath)
	if err != nil {
		return err
	}
	patch, err := readInput(patchPath)
	if err != nil {
		return err
	}

	dst := make([]byte, len(target)+len(patch)+256)
	outcome, n := json.ApplyPatch(target, patch, dst)

	fmt.Printf("%s %s\n", bold("outcome:"), outcomeColor(outcome))
	if outcome == json.Success || outcome == json.NoChange {
		fmt.Println(string(dst[:n]))
		return nil
	}
	return fmt.Errorf("patch failed: %s", outcome)
}
