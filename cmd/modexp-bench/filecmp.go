package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/filecmp"
)

var errFilesDiffer = errors.New("files differ")

var (
	printOffsetsFlag = &cli.BoolFlag{
		Name:  "print-offsets",
		Usage: "print every mismatching offset",
	}

	filecmpCommand = &cli.Command{
		Name:      "filecmp",
		Usage:     "compare two files byte by byte",
		ArgsUsage: "<first> <second>",
		Flags:     []cli.Flag{printOffsetsFlag},
		Action:    compareFiles,
	}
)

func compareFiles(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		_ = cli.ShowSubcommandHelp(ctx)
		return fmt.Errorf("expected two paths, got %d", ctx.NArg())
	}
	r, err := filecmp.CompareFiles(ctx.Args().Get(0), ctx.Args().Get(1), ctx.Bool(printOffsetsFlag.Name))
	if err != nil {
		return err
	}
	if _, err := r.WriteTo(ctx.App.Writer); err != nil {
		return err
	}
	if !r.OK() {
		return errFilesDiffer
	}
	return nil
}
