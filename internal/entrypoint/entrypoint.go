package entrypoint

import (
	"context"
	"errors"

	"pravenc_scrap/internal/app"
	"pravenc_scrap/internal/cli"
	"pravenc_scrap/internal/subcommands/batchrun"
	"pravenc_scrap/internal/subcommands/codes"
	"pravenc_scrap/internal/subcommands/convert"
	followcmd "pravenc_scrap/internal/subcommands/follow"
	"pravenc_scrap/internal/subcommands/listurls"
	"pravenc_scrap/internal/subcommands/mappage"
)

func Execute(args []string) (int, error) {
	if len(args) > 1 {
		switch args[1] {
		case "list":
			return exitCode(listurls.Run(args[2:]))
		case "batch":
			return exitCode(batchrun.Run(args[2:]))
		case "follow":
			return exitCode(followcmd.Run(args[2:]))
		case "codes":
			return exitCode(codes.Run(args[2:]))
		case "mappage":
			return exitCode(mappage.Run(args[2:]))
		case "convert":
			return exitCode(convert.Run(args[2:]))
		}
	}

	opts, err := cli.ParseArgs(args[1:])
	if err != nil {
		return exitCode(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()
	return exitCode(app.Run(ctx, opts))
}

func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, exitErr.Err
	}
	return 1, err
}
