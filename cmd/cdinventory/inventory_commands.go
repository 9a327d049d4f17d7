package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cdinventory/internal/inventory"
	"cdinventory/internal/shell"
	"cdinventory/internal/snapshot"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the CDs in the inventory file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openInventory()
			if err != nil {
				return err
			}
			if session.loaded.Status == snapshot.LoadCorrupt {
				return session.loaded.Err
			}

			records := session.store.List()
			if ctx.JSONMode() {
				return writeJSON(cmd, records)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "Inventory: empty")
				return nil
			}
			fmt.Fprintf(out, "Inventory: %d CDs\n\n", len(records))
			fmt.Fprintln(out, shell.RenderInventory(records, session.cfg.Display.TableStyle))
			return nil
		},
	}
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var id int
	var title string
	var artist string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a CD to the inventory file",
		Long: `Add a CD to the end of the inventory file.

Duplicate IDs are accepted.

Example:
  cdinventory add --id 1 --title "Abbey Road" --artist "Beatles"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openInventory()
			if err != nil {
				return err
			}
			if err := session.requireWritable(); err != nil {
				return err
			}

			record := inventory.Record{ID: id, Title: strings.TrimSpace(title), Artist: strings.TrimSpace(artist)}
			session.store.Add(record.ID, record.Title, record.Artist)
			if err := session.save(); err != nil {
				return err
			}

			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{
					"added": record,
					"count": session.store.Len(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added CD %d (%s by %s); inventory now holds %d CDs\n",
				record.ID, record.Title, record.Artist, session.store.Len())
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "CD ID")
	cmd.Flags().StringVar(&title, "title", "", "CD title")
	cmd.Flags().StringVar(&artist, "artist", "", "Artist name")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("artist")
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove the first CD with the given ID",
		Long: `Remove the first CD with the given ID from the inventory file.

When several CDs share the ID, only the first one listed is removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid CD ID: %s (must be an integer)", args[0])
			}

			session, err := ctx.openInventory()
			if err != nil {
				return err
			}
			if err := session.requireWritable(); err != nil {
				return err
			}

			if session.store.Remove(id) == inventory.NotFound {
				return fmt.Errorf("CD %d not found in %s", id, session.cfg.Inventory.DataFile)
			}
			if err := session.save(); err != nil {
				return err
			}

			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{
					"removed": id,
					"count":   session.store.Len(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed CD %d; inventory now holds %d CDs\n", id, session.store.Len())
			return nil
		},
	}
}
