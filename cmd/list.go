package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/alivastudio/motorracing-manager/defs/registry"
)

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "Tabulate every definition of one kind",
	Long:  "Tabulate every definition of one kind. Kinds: " + strings.Join(kindNames(), ", "),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := kindByName(args[0])
		if err != nil {
			return err
		}
		regs, err := loadRegistries(packName)
		if err != nil {
			return err
		}
		for _, r := range regs {
			renderList(cmd.OutOrStdout(), r, k)
		}
		return nil
	},
}

func renderList(w io.Writer, r *registry.Registry, k kind) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(fmt.Sprintf("%s %s", r.PackID(), r.Version()))
	t.AppendHeader(k.header)
	t.AppendRows(k.rows(r))
	t.Render()
}
