// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage networks kept in the local store",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "put NAME FILE",
			Short: "Validate FILE and store it under NAME",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				obj, err := a.loadFile(args[1])
				if err != nil {
					return err
				}
				if _, err = newGraph(obj); err != nil {
					return err
				}
				s, err := a.openStore()
				if err != nil {
					return err
				}
				defer s.Close()

				return s.Put(cmd.Context(), args[0], obj)
			},
		},
		&cobra.Command{
			Use:   "get NAME",
			Short: "Print the stored document",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.openStore()
				if err != nil {
					return err
				}
				defer s.Close()
				data, err := s.Raw(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:     "ls",
			Aliases: []string{"list"},
			Short:   "List stored names",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := a.openStore()
				if err != nil {
					return err
				}
				defer s.Close()
				names, err := s.Names(cmd.Context())
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:     "rm NAME",
			Aliases: []string{"delete"},
			Short:   "Remove a stored network",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.openStore()
				if err != nil {
					return err
				}
				defer s.Close()

				return s.Delete(cmd.Context(), args[0])
			},
		},
	)

	return cmd
}
