// Package pagination resuelve los parámetros de listado (limit, page, sort) que comparten
// todos los endpoints. Los valores inválidos nunca se rechazan: se corrigen.
package pagination

import (
	"math"
	"strconv"
	"strings"
)

// Direction orden por fecha de creación.
type Direction int

const (
	Desc Direction = iota // más recientes primero
	Asc
)

// ParseDirection "asc" → Asc; cualquier otra cosa → Desc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "asc") {
		return Asc
	}
	return Desc
}

// SQL devuelve la palabra clave de ORDER BY.
func (d Direction) SQL() string {
	if d == Asc {
		return "ASC"
	}
	return "DESC"
}

func (d Direction) String() string {
	if d == Asc {
		return "asc"
	}
	return "desc"
}

// Config reemplaza la tabla global de ordenamientos; se inyecta al construir los repositorios.
type Config struct {
	DefaultLimit int
	MaxLimit     int
	DefaultSort  Direction
	Sorts        map[string]Direction
}

// DefaultConfig límite 10, máximo 100, asc/desc.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 10,
		MaxLimit:     100,
		Sorts: map[string]Direction{
			"asc":  Asc,
			"desc": Desc,
		},
	}
}

// Page parámetros ya resueltos.
type Page struct {
	Limit     int
	Page      int
	Skip      int
	Direction Direction
}

// Resolve convierte la entrada cruda del cliente en una Page válida:
//   - limit no numérico, <= 0 o > MaxLimit → DefaultLimit
//   - page no numérico o <= 0 → 1
//   - page tan grande que (page-1)*limit desborda → la última página representable
//   - sort desconocido → DefaultSort (Desc salvo configuración)
func (c Config) Resolve(limit, page, sort string) Page {
	cfg := c.withDefaults()

	l, err := strconv.Atoi(strings.TrimSpace(limit))
	if err != nil || l <= 0 || l > cfg.MaxLimit {
		l = cfg.DefaultLimit
	}
	p, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil || p <= 0 {
		p = 1
	}
	if maxPage := math.MaxInt / l; p > maxPage {
		p = maxPage
	}
	dir, ok := cfg.Sorts[strings.ToLower(strings.TrimSpace(sort))]
	if !ok {
		dir = cfg.DefaultSort
	}
	return Page{Limit: l, Page: p, Skip: (p - 1) * l, Direction: dir}
}

// ResolveInts variante para quien ya tiene enteros (ej. c.QueryInt de Fiber).
func (c Config) ResolveInts(limit, page int, sort string) Page {
	return c.Resolve(strconv.Itoa(limit), strconv.Itoa(page), sort)
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = d.DefaultLimit
	}
	if c.MaxLimit <= 0 {
		c.MaxLimit = d.MaxLimit
	}
	if c.DefaultLimit > c.MaxLimit {
		c.DefaultLimit = c.MaxLimit
	}
	if len(c.Sorts) == 0 {
		c.Sorts = d.Sorts
	}
	return c
}
