// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

// registry maps backend names to factories and file extensions to names.
type registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
	byExt     map[string]string
}

var defaultRegistry = &registry{
	factories: make(map[string]BackendFactory),
	byExt:     make(map[string]string),
}

func (r *registry) add(name string, factory BackendFactory, exts []string) {
	if factory == nil {
		panic("recording: nil factory for backend " + name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.factories[name]; taken {
		panic("recording: backend " + name + " registered twice")
	}
	r.factories[name] = factory
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if _, taken := r.byExt[ext]; !taken {
			r.byExt[ext] = name
		}
	}
}

func (r *registry) remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
	for ext, owner := range r.byExt {
		if owner == name {
			delete(r.byExt, ext)
		}
	}
}

func (r *registry) factory(name string) (BackendFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Register makes a backend available under name. Backends call it from an
// init function, so importing the backend package for side effects is
// enough to enable it:
//
//	import _ "github.com/gogpu/tunic/recording/backends/svg"
//
// Extensions such as ".svg" let ForFile pick the backend from an output
// path. The first backend to claim an extension keeps it.
//
// Register panics if factory is nil or name is already taken.
func Register(name string, factory BackendFactory, extensions ...string) {
	defaultRegistry.add(name, factory, extensions)
}

// Unregister removes a backend and its extensions.
func Unregister(name string) {
	defaultRegistry.remove(name)
}

// NewBackend returns a fresh instance of the named backend.
func NewBackend(name string) (Backend, error) {
	f, ok := defaultRegistry.factory(name)
	if !ok {
		return nil, fmt.Errorf("recording: backend %q not registered (missing import?)", name)
	}
	return f(), nil
}

// MustBackend is NewBackend for names known to be registered.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// ForFile returns the name of the backend registered for the extension of
// path, for example "raster" for "sheet.png".
func ForFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	defaultRegistry.mu.RLock()
	name, ok := defaultRegistry.byExt[ext]
	defaultRegistry.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("recording: no backend for file extension %q", ext)
	}
	return name, nil
}

// Backends lists registered backend names, sorted.
func Backends() []string {
	defaultRegistry.mu.RLock()
	names := make([]string, 0, len(defaultRegistry.factories))
	for name := range defaultRegistry.factories {
		names = append(names, name)
	}
	defaultRegistry.mu.RUnlock()
	slices.Sort(names)
	return names
}

// IsRegistered reports whether name has a factory.
func IsRegistered(name string) bool {
	_, ok := defaultRegistry.factory(name)
	return ok
}
