// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/idledeity/marsminingco-sub000/config"
	"github.com/idledeity/marsminingco-sub000/mesh"
	"github.com/idledeity/marsminingco-sub000/nav"
	"github.com/idledeity/marsminingco-sub000/navstore"
	"github.com/idledeity/marsminingco-sub000/persist"
)

var errNoSource = errors.New("navmesh: one of --file or --name is required")

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgPath string
	file    string
	name    string

	cfg      config.Config
	logger   *slog.Logger
	reg      *persist.Registry
	shutdown func(context.Context) error
}

// newRootCmd builds the command tree. Run it through app.execute so metrics
// are flushed even when a command fails.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:          "navmesh",
		Short:        "Inspect, query and store navigation networks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVarP(&a.file, "file", "f", "", "read the network from a YAML file")
	root.PersistentFlags().StringVarP(&a.name, "name", "n", "", "read the network from the store")

	root.AddCommand(
		newInfoCmd(a),
		newPathCmd(a),
		newBatchCmd(a),
		newStoreCmd(a),
		newGenCmd(a),
	)

	return root, a
}

// execute runs root and then flushes metrics. PersistentPostRunE is not used
// because cobra skips it when RunE fails.
func (a *app) execute(root *cobra.Command) (err error) {
	defer func() {
		err = errors.Join(err, a.close(context.Background()))
	}()

	return root.Execute()
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Log.Logger(cmd.ErrOrStderr())
	if a.shutdown, err = initMetrics(cfg.Metrics.Exporter, cmd.ErrOrStderr()); err != nil {
		return err
	}

	// Mesh and nav networks loaded in one invocation share an allocator.
	ids := mesh.NewIDAllocator()
	opts := cfg.NetworkOptions(a.logger)
	a.reg = persist.NewRegistry()
	if err = errors.Join(mesh.Register(a.reg, ids, opts...), nav.Register(a.reg, ids, opts...)); err != nil {
		return fmt.Errorf("navmesh: register types: %w", err)
	}

	return nil
}

// close flushes metrics. Only the first call does any work.
func (a *app) close(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	shutdown := a.shutdown
	a.shutdown = nil

	return shutdown(ctx)
}

func (a *app) openStore() (*navstore.Store, error) {
	return navstore.Open(a.cfg.StoreOptions(a.logger), a.reg)
}

// loadFile decodes the network document at path.
func (a *app) loadFile(path string) (persist.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return persist.Load(f, a.reg)
}

// load reads the network selected by --file or --name.
func (a *app) load(ctx context.Context) (*graph, error) {
	var (
		obj persist.Object
		err error
	)
	switch {
	case a.file != "" && a.name != "":
		return nil, errors.New("navmesh: --file and --name are exclusive")
	case a.file != "":
		obj, err = a.loadFile(a.file)
	case a.name != "":
		var s *navstore.Store
		if s, err = a.openStore(); err != nil {
			return nil, err
		}
		defer s.Close()
		obj, err = s.Get(ctx, a.name)
	default:
		return nil, errNoSource
	}
	if err != nil {
		return nil, err
	}

	return newGraph(obj)
}
