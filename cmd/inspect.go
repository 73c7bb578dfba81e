package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alivastudio/motorracing-manager/defs"
	"github.com/alivastudio/motorracing-manager/defs/registry"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <kind> <id>",
	Short: "Print one definition as YAML",
	Long:  "Print one definition as YAML. Kinds: " + strings.Join(kindNames(), ", "),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := kindByName(args[0])
		if err != nil {
			return err
		}
		regs, err := loadRegistries(packName)
		if err != nil {
			return err
		}
		return inspect(cmd.OutOrStdout(), regs, k, args[1])
	},
}

// inspect prints the definition from every registry that has it, each as its
// own YAML document headed by the pack it came from. It fails only if no
// registry knows the id.
func inspect(w io.Writer, regs []*registry.Registry, k kind, id string) error {
	found := 0
	for _, r := range regs {
		def, err := k.lookup(r, id)
		if errors.Is(err, defs.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if found > 0 {
			fmt.Fprintln(w, "---")
		}
		found++
		fmt.Fprintf(w, "# %s %s\n", r.PackID(), r.Version())
		if err := writeYAML(w, def); err != nil {
			return err
		}
	}
	if found == 0 {
		return fmt.Errorf("%w: %q in %d pack(s)", defs.ErrNotFound, id, len(regs))
	}
	return nil
}

// writeYAML encodes v with mapping keys in sorted order. Definitions carry
// id-keyed maps whose encoding order would otherwise vary from run to run.
func writeYAML(w io.Writer, v any) error {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
