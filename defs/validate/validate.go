// Package validate checks a definition pack for internal consistency.
//
// Validation accumulates: every rule runs against every entity and each
// violation becomes one message in the Result. Messages name the offending
// entity and field, e.g. "monaco.BaseTimeMs must equal the sum of sector
// BaseTimeMs.", and are meant to be read by content authors.
package validate

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/alivastudio/motorracing-manager/defs"
)

// BasisPointsMax is 100% in basis points.
const BasisPointsMax = 10000

// Pack runs every check against p. A nil pack yields a single error.
func Pack(p *defs.Pack) Result {
	if p == nil {
		return Result{errs: []string{"DefinitionPack cannot be nil."}}
	}

	c := &checker{}
	pc := p.Contents()

	checkMetadata(c, pc)
	checkPresence(c, pc)
	checkUniqueness(c, pc)
	checkScalars(c, pc.Scalars)
	checkTyreCompounds(c, pc.TyreCompounds)
	checkWeather(c, pc)
	checkRulesets(c, pc)
	checkTracks(c, pc)
	checkSeries(c, pc)
	checkPartTypes(c, pc.PartTypes)
	checkSponsors(c, pc.Sponsors)
	checkBuildings(c, pc.Buildings)
	checkComponents(c, pc.Components)
	checkDriverArchetypes(c, pc.DriverArchetypes)

	logrus.Debugf("validated pack %q version %q: %d error(s)", pc.PackID, pc.Version, len(c.errs))
	return Result{errs: c.errs}
}

type integer interface {
	~int | ~int64
}

// checker collects messages. Each checker method appends at most one message;
// references and probabilityMap may append several.
type checker struct {
	errs []string
}

func (c *checker) addf(format string, args ...any) {
	c.errs = append(c.errs, fmt.Sprintf(format, args...))
}

func (c *checker) between(name string, v, low, high int) {
	if v < low || v > high {
		c.addf("%s must be between %d and %d.", name, low, high)
	}
}

func (c *checker) basisPoints(name string, v int) {
	c.between(name, v, 0, BasisPointsMax)
}

func (c *checker) minMax(name string, low, high int) {
	if low > high {
		c.addf("%s must satisfy min <= max.", name)
	}
}

// basisPointRange checks a min/max pair of basis-point fields on owner.
func (c *checker) basisPointRange(owner, field, label string, low, high int) {
	c.basisPoints(fmt.Sprintf("%s.%sMinBasisPoints", owner, field), low)
	c.basisPoints(fmt.Sprintf("%s.%sMaxBasisPoints", owner, field), high)
	c.minMax(owner+" "+label+" range", low, high)
}

func (c *checker) nonEmpty(name string, n int) {
	if n == 0 {
		c.addf("%s must be non-empty.", name)
	}
}

func positive[T integer](c *checker, name string, v T) {
	if v <= 0 {
		c.addf("%s must be > 0.", name)
	}
}

func nonNegative[T integer](c *checker, name string, v T) {
	if v < 0 {
		c.addf("%s must be >= 0.", name)
	}
}

type identifier interface {
	comparable
	fmt.Stringer
	Kind() string
}

func idSet[T any, K identifier](items []T, key func(T) K) map[K]struct{} {
	return lo.Keyify(lo.Map(items, func(item T, _ int) K { return key(item) }))
}

// references reports every id in refs that is not in known.
func references[K identifier](c *checker, owner, field string, refs []K, known map[K]struct{}) {
	for _, ref := range refs {
		if _, ok := known[ref]; !ok {
			c.addf("%s.%s references missing %s '%s'.", owner, field, ref.Kind(), ref)
		}
	}
}

// probabilityMap checks a distribution in basis points and that every key
// resolves to a known entity.
func probabilityMap[K identifier](c *checker, name string, m map[K]int, known map[K]struct{}) {
	if len(m) == 0 {
		c.addf("%s must be non-empty.", name)
		return
	}
	keys := defs.SortedKeys(m)
	if lo.SomeBy(keys, func(k K) bool { return m[k] < 0 }) {
		c.addf("%s values must be >= 0.", name)
	}
	if sum := lo.Sum(lo.Values(m)); sum != BasisPointsMax {
		c.addf("%s must sum to exactly %d.", name, BasisPointsMax)
	}
	for _, k := range keys {
		if _, ok := known[k]; !ok {
			c.addf("%s references missing %s '%s'.", name, k.Kind(), k)
		}
	}
}
