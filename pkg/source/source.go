// Package source provides ready-made schema.Source implementations: in-memory
// maps, process-environment snapshots, layered chains and prefixed views.
package source

import (
	"os"
	"strings"

	"github.com/aretw0/sill/pkg/schema"
)

// Map is an in-memory source, useful for tests and for snapshots loaded from
// elsewhere (files, remote stores).
type Map map[string]string

// Lookup implements schema.Source.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Environ captures the current process environment as an immutable snapshot.
// Later changes to the environment do not affect the returned source.
func Environ() Map {
	env := os.Environ()
	m := make(Map, len(env))
	for _, kv := range env {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			m[kv[:i]] = kv[i+1:]
		}
	}
	return m
}

// Chain layers sources; the first one that has the name wins. The usual
// arrangement is Chain(Environ(), fileSource) so the process environment
// overrides file contents.
func Chain(sources ...schema.Source) schema.Source {
	return chain(sources)
}

type chain []schema.Source

func (c chain) Lookup(name string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

// Prefix namespaces lookups: with prefix "APP_", Lookup("PORT") reads
// "APP_PORT" from the wrapped source.
func Prefix(src schema.Source, prefix string) schema.Source {
	return prefixed{src: src, prefix: prefix}
}

type prefixed struct {
	src    schema.Source
	prefix string
}

func (p prefixed) Lookup(name string) (string, bool) {
	return p.src.Lookup(p.prefix + name)
}
