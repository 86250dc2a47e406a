// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classinfo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/gen2brain/iup-go-sub012/core"
)

// minSimilarity is the similarity below which names are not suggested.
const minSimilarity = 0.5

// Suggest returns the names most similar to name, best first, ignoring
// case. At most max names are returned.
func Suggest(name string, names []string, max int) []string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	type scored struct {
		name  string
		score float64
	}
	var cands []scored
	for _, nm := range names {
		if s := strutil.Similarity(name, nm, lev); s >= minSimilarity {
			cands = append(cands, scored{nm, s})
		}
	}
	slices.SortStableFunc(cands, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})
	var out []string
	for _, c := range cands {
		if len(out) == max {
			break
		}
		out = append(out, c.name)
	}
	return out
}

// Find returns the class registered under name in r. For an unknown
// name the error wraps [core.ErrUnknownClass] and names the most
// similar classes.
func Find(r *core.Registry, name string) (*core.Class, error) {
	if c := r.Find(name); c != nil {
		return c, nil
	}
	err := fmt.Errorf("%w: %q", core.ErrUnknownClass, name)
	if sug := Suggest(name, r.Names(), 3); len(sug) > 0 {
		err = fmt.Errorf("%w; did you mean %s?", err, strings.Join(sug, " or "))
	}
	return nil, err
}
