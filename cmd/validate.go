package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alivastudio/motorracing-manager/defs"
	"github.com/alivastudio/motorracing-manager/defs/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate reference packs and report every problem found",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		packs, err := selectPacks(packName)
		if err != nil {
			return err
		}
		return reportValidation(cmd.OutOrStdout(), packs)
	},
}

// reportValidation prints one block per pack and fails if any pack is
// invalid.
func reportValidation(w io.Writer, packs []*defs.Pack) error {
	failed := 0
	for _, p := range packs {
		res := validate.Pack(p)
		if res.IsValid() {
			fmt.Fprintf(w, "%s %s: ok\n", p.ID(), p.Version())
			continue
		}
		failed++
		errs := res.Errors()
		fmt.Fprintf(w, "%s %s: %d error(s)\n", p.ID(), p.Version(), len(errs))
		for _, e := range errs {
			fmt.Fprintf(w, "  - %s\n", e)
		}
		logrus.Infof("pack %s failed validation with %d error(s)", p.ID(), len(errs))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d pack(s) invalid", failed, len(packs))
	}
	return nil
}
