package cmd

import (
	"fmt"

	"github.com/alivastudio/motorracing-manager/defs"
	"github.com/alivastudio/motorracing-manager/defs/refpack"
	"github.com/alivastudio/motorracing-manager/defs/registry"
)

func packChoices() []string {
	return append(refpack.Names(), allPacks)
}

// selectPacks builds the named reference pack, or every reference pack for
// "all".
func selectPacks(name string) ([]*defs.Pack, error) {
	names := []string{name}
	if name == allPacks {
		names = refpack.Names()
	}
	packs := make([]*defs.Pack, 0, len(names))
	for _, n := range names {
		p, err := refpack.ByName(n)
		if err != nil {
			return nil, err
		}
		packs = append(packs, p)
	}
	return packs, nil
}

// loadRegistries validates and indexes the selected packs.
func loadRegistries(name string) ([]*registry.Registry, error) {
	packs, err := selectPacks(name)
	if err != nil {
		return nil, err
	}
	regs := make([]*registry.Registry, 0, len(packs))
	for _, p := range packs {
		r, err := registry.Load(p)
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", p.ID(), err)
		}
		regs = append(regs, r)
	}
	return regs, nil
}
