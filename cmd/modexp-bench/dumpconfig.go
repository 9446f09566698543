package main

import (
	"github.com/urfave/cli/v2"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/utils"
)

var dumpConfigCommand = &cli.Command{
	Name:   "dumpconfig",
	Usage:  "print the resolved configuration as TOML",
	Flags:  append([]cli.Flag{engineFlag}, benchFlags...),
	Action: dumpConfig,
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	out, err := utils.MarshalConfig(cfg)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
