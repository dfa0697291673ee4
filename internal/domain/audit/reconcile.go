// Package audit contiene el álgebra de conjuntos de la conciliación de EPC:
// conjunto esperado (stage) contra conjunto leído físicamente (scan).
package audit

import (
	"sort"
	"strings"
)

// Result conciliación de un scan. Los tres conjuntos se emiten ordenados.
type Result struct {
	Found          []string `json:"found"`
	UnknownInScan  []string `json:"unknownInScan"`
	UnknownInStage []string `json:"unknownInStage"`

	StagedCount  int `json:"stagedCount"`
	ScannedCount int `json:"scannedCount"`
}

// FoundCount cantidad de tags presentes en ambos conjuntos.
func (r Result) FoundCount() int { return len(r.Found) }

// Complete true cuando no hay faltantes ni sobrantes.
func (r Result) Complete() bool {
	return len(r.UnknownInScan) == 0 && len(r.UnknownInStage) == 0
}

// Normalize recorta espacios, descarta vacíos y duplicados, preservando el orden de aparición.
func Normalize(epcs []string) []string {
	seen := make(map[string]struct{}, len(epcs))
	out := make([]string, 0, len(epcs))
	for _, e := range epcs {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Reconcile calcula found = S ∩ T, unknownInScan = T \ S y unknownInStage = S \ T.
// No modifica las entradas.
func Reconcile(staged, scanned []string) Result {
	s := toSet(staged)
	t := toSet(scanned)

	res := Result{
		Found:          []string{},
		UnknownInScan:  []string{},
		UnknownInStage: []string{},
		StagedCount:    len(s),
		ScannedCount:   len(t),
	}
	for e := range t {
		if _, ok := s[e]; ok {
			res.Found = append(res.Found, e)
		} else {
			res.UnknownInScan = append(res.UnknownInScan, e)
		}
	}
	for e := range s {
		if _, ok := t[e]; !ok {
			res.UnknownInStage = append(res.UnknownInStage, e)
		}
	}
	sort.Strings(res.Found)
	sort.Strings(res.UnknownInScan)
	sort.Strings(res.UnknownInStage)
	return res
}

func toSet(epcs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(epcs))
	for _, e := range Normalize(epcs) {
		set[e] = struct{}{}
	}
	return set
}
