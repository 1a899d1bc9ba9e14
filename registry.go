package shufseq

import (
	"maps"
	"slices"

	"github.com/yyyoichi/shufseq/internal/sequence"
	"github.com/yyyoichi/shufseq/internal/uniform"
)

type entry struct {
	description string
	new         func(src uniform.Source) Generator
}

var generators = map[string]entry{
	"random": {
		"Independent draw every call. min 1, max unbounded (horrid); avg N.",
		func(src uniform.Source) Generator { return sequence.NewRandom(src) },
	},
	"order": {
		"Identity order over and over. min, max, avg N; stddev 0 (horrid).",
		func(uniform.Source) Generator { return sequence.NewOrder() },
	},
	"shuffle": {
		"Reshuffle the whole sequence each pass. min 1, max 2N (horrid); avg N.",
		func(src uniform.Source) Generator { return sequence.NewWindow(src) },
	},
	"split": {
		"Shuffle both halves separately. min N/2 (good), max N (ideal), low stddev.",
		func(src uniform.Source) Generator { return sequence.NewSplit(src) },
	},
	"split_r": {
		"Shuffle two zones split at a point drawn each pass from [N/4, 3N/4].",
		func(src uniform.Source) Generator { return sequence.NewRandomSplit(src) },
	},
	"disjoint": {
		"Two disjoint shuffles interlaced by a width drawn each pass. min .5N, max 1.5N (good).",
		func(src uniform.Source) Generator { return sequence.NewDisjoint(src) },
	},
	"overlap": {
		"Shuffle both halves then the central band. min N/2, max 3N/2 (good).",
		func(src uniform.Source) Generator { return sequence.NewOverlap(src) },
	},
}

func IsValid(name string) bool {
	_, ok := generators[name]
	return ok
}

// Names returns the registered generator names in lexical order.
func Names() []string {
	return slices.Sorted(maps.Keys(generators))
}

func Description(name string) (string, error) {
	e, ok := generators[name]
	if !ok {
		return "", unknown(name)
	}
	return e.description, nil
}
