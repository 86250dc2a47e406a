// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/gen2brain/iup-go-sub012/base/logx"
	"github.com/gen2brain/iup-go-sub012/classes"
	"github.com/gen2brain/iup-go-sub012/classinfo"
	"github.com/gen2brain/iup-go-sub012/config"
	"github.com/gen2brain/iup-go-sub012/core"
	"github.com/gen2brain/iup-go-sub012/driver/offscreen"
)

// options are the flags shared by every command.
type options struct {
	configFile string
	verbose    bool
	debug      bool
	quiet      bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "iupinfo",
		Short:         "Inspect toolkit classes and global attributes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.SetDefaultLogger()
			logx.SetLevel(logx.LevelFromFlags(opts.debug, opts.verbose, opts.quiet))
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "settings file (TOML or YAML)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&opts.debug, "vv", false, "log debug messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "log only errors")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newListCmd(opts),
		newDescribeCmd(opts),
		newTreeCmd(opts),
		newGlobalsCmd(opts),
		newWatchCmd(opts),
	)
	return root
}

// open opens a toolkit context with the offscreen driver, the
// settings file if any, and the built-in classes.
func (o *options) open(cmd *cobra.Command) (*core.Context, error) {
	var s *config.Settings
	if o.configFile != "" {
		var err error
		if s, err = config.Open(o.configFile); err != nil {
			return nil, err
		}
	}
	ctx, err := core.Open(offscreen.New(), s)
	if err != nil {
		return nil, err
	}
	// command line verbosity wins over the settings file
	if f := cmd.Flags(); f.Changed("verbose") || f.Changed("vv") || f.Changed("quiet") {
		logx.SetLevel(logx.LevelFromFlags(o.debug, o.verbose, o.quiet))
	}
	if err := classes.Register(ctx.Classes()); err != nil {
		ctx.Close()
		return nil, err
	}
	return ctx, nil
}

func (o *options) output(w io.Writer) *termenv.Output {
	if o.noColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()
			out := opts.output(cmd.OutOrStdout())
			for _, info := range classinfo.DescribeAll(ctx.Classes()) {
				name := out.String(fmt.Sprintf("%-10s", info.Name)).Bold()
				kind := out.String(fmt.Sprintf("%-8s", info.NativeKind)).Foreground(out.Color("6"))
				fmt.Fprintf(out, "%s %s %s\n", name, kind, strings.Join(info.Chain, " < "))
			}
			return nil
		},
	}
}

func newDescribeCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "describe CLASS...",
		Short: "Describe classes: parameters, attributes and callbacks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := classinfo.ParseFormat(format)
			if err != nil {
				return err
			}
			ctx, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()
			var infos []classinfo.Info
			for _, name := range args {
				c, err := classinfo.Find(ctx.Classes(), name)
				if err != nil {
					return err
				}
				infos = append(infos, classinfo.Describe(c))
			}
			return classinfo.Encode(cmd.OutOrStdout(), f, infos...)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, yaml or toml")
	return cmd
}

func newTreeCmd(opts *options) *cobra.Command {
	var noMap bool
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Build a sample dialog, lay it out and print its element tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()
			dlg, err := sampleDialog(ctx)
			if err != nil {
				return err
			}
			if !noMap {
				if err := dlg.Map(); err != nil {
					return err
				}
			}
			dlg.Refresh()
			return classinfo.WriteTree(cmd.OutOrStdout(), dlg)
		},
	}
	cmd.Flags().BoolVar(&noMap, "no-map", false, "do not map the dialog before the layout")
	return cmd
}

func sampleDialog(ctx *core.Context) (*core.Handle, error) {
	name := ctx.MustCreate("label", "Name:")
	ok := ctx.MustCreate("button", "OK", "ok_action")
	cancel := ctx.MustCreate("button", "Cancel")
	buttons := ctx.MustCreate("hbox", ok, cancel)
	buttons.SetAttribute("GAP", "4")
	box := ctx.MustCreate("vbox", name, buttons)
	box.SetAttribute("GAP", "8")
	dlg, err := ctx.Create("dialog", box)
	if err != nil {
		return nil, err
	}
	dlg.SetAttribute("TITLE", "Sample")
	dlg.SetName("sample")
	return dlg, nil
}

func newGlobalsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "globals",
		Short: "Print the global attributes after applying the settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()
			writeGlobals(opts.output(cmd.OutOrStdout()), ctx)
			return nil
		},
	}
}

func writeGlobals(out *termenv.Output, ctx *core.Context) {
	names := append([]string{core.GlobalDriver, core.GlobalVersion}, ctx.GlobalNames()...)
	for _, name := range names {
		fmt.Fprintf(out, "%s=%s\n", out.String(name).Bold(), ctx.Global(name))
	}
}

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Apply the settings file whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configFile == "" {
				return fmt.Errorf("watch: a settings file is required (--config)")
			}
			ctx, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer ctx.Close()
			updates, err := config.Watch(cmd.Context(), opts.configFile)
			if err != nil {
				return err
			}
			out := opts.output(cmd.OutOrStdout())
			writeGlobals(out, ctx)
			for u := range updates {
				if u.Err != nil {
					slog.Error("iupinfo watch: reload", "path", opts.configFile, "err", u.Err)
					continue
				}
				if err := ctx.Apply(u.Settings); err != nil {
					slog.Error("iupinfo watch: apply", "path", opts.configFile, "err", err)
					continue
				}
				slog.Info("iupinfo watch: settings applied", "path", opts.configFile)
				writeGlobals(out, ctx)
			}
			return nil
		},
	}
}
