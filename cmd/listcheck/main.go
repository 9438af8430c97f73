// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command listcheck exercises the checked doubly linked list in
// cloudeng.io/dlist/container/list, either against a built-in catalogue
// of error cases or against YAML scenario files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/dlist/internal/scenario"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: listcheck
summary: exercise the checked doubly linked list
commands:
  - name: exceptions
    summary: run the built-in catalogue of error cases against empty lists
  - name: run
    summary: run scenario files and print the final state of their lists
    arguments:
      - <scenario.yaml>
      - ...
`

type exceptionsFlags struct {
	cmdutil.LoggingFlags
}

type runFlags struct {
	cmdutil.LoggingFlags
	Format string `subcmd:"format,text,'output format for list contents: text or yaml'"`
}

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("exceptions").MustRunnerAndFlags(exceptions,
		subcmd.MustRegisteredFlagSet(&exceptionsFlags{}))
	cmdSet.Set("run").MustRunnerAndFlags(run,
		subcmd.MustRegisteredFlagSet(&runFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}

var stdout io.Writer = os.Stdout

func withLogger(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return nil, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func exceptions(ctx context.Context, values any, _ []string) error {
	fv := values.(*exceptionsFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	outcomes := scenario.Exceptions(ctx)
	caught := 0
	for _, o := range outcomes {
		status := "not caught"
		if o.Caught() {
			status = "caught"
			caught++
		}
		fmt.Fprintf(stdout, "%-40v %v: %v\n", o.Name, status, o.Err)
	}
	fmt.Fprintf(stdout, "caught %v of %v\n", caught, len(outcomes))
	if caught != len(outcomes) {
		return fmt.Errorf("%v of %v cases did not fail as expected", len(outcomes)-caught, len(outcomes))
	}
	return nil
}

func run(ctx context.Context, values any, args []string) error {
	fv := values.(*runFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	for _, file := range args {
		s, err := scenario.ParseFile(ctx, file)
		if err != nil {
			errs.Append(err)
			continue
		}
		st, err := s.Run(ctx)
		if err != nil {
			errs.Append(errors.Annotate(file, err))
		}
		fmt.Fprintf(stdout, "# %v: %v\n", file, s.Name)
		if err := st.Report(stdout, fv.Format); err != nil {
			errs.Append(err)
		}
	}
	return errs.Err()
}
