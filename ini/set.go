// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"zombiezen.com/go/log"
)

// StoreSet is a list of stores to obtain configuration from in descending
// order of precedence. Nil elements are treated as empty stores.
type StoreSet []*Store

// LoadFiles loads the files at the given paths and returns a StoreSet. If the
// returned error is nil, the returned set's length will be the same as the
// number of arguments. LoadFiles will stop on the first error, but ignores
// missing file errors, instead filling the corresponding element of the set
// with a nil *Store.
func LoadFiles(ctx context.Context, paths ...string) (StoreSet, error) {
	sset := make(StoreSet, 0, len(paths))
	for _, p := range paths {
		s, err := Open(p)
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf(ctx, "Skipping missing config file %s", p)
			sset = append(sset, nil)
			continue
		}
		if err != nil {
			return sset, fmt.Errorf("load ini files: %w", err)
		}
		sset = append(sset, s)
	}
	return sset, nil
}

// Get returns the value of key in section from the first store that has it.
// If no store has the key, Get returns a *NotFoundError, with MissingSection
// set when no store has the section at all.
func (sset StoreSet) Get(section, key string) (string, error) {
	hasSection := false
	for _, s := range sset {
		v, err := s.Get(section, key)
		if err == nil {
			return v, nil
		}
		hasSection = hasSection || s.HasSection(section)
	}
	if !hasSection {
		return "", &NotFoundError{Section: section, Key: key, MissingSection: true}
	}
	return "", &NotFoundError{Section: section, Key: key}
}

// Sections returns the names of sections present in any store in lexical
// order.
func (sset StoreSet) Sections() []string {
	merged := make(map[string]struct{})
	for _, s := range sset {
		for _, name := range s.Sections() {
			merged[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Section returns a copy of the properties in the named section merged across
// all stores, with values from earlier stores taking precedence. It returns
// nil if no store has the section.
func (sset StoreSet) Section(name string) map[string]string {
	var merged map[string]string
	for i := len(sset) - 1; i >= 0; i-- {
		if !sset[i].HasSection(name) {
			continue
		}
		if merged == nil {
			merged = make(map[string]string)
		}
		for k, v := range sset[i].sections[name] {
			merged[k] = v
		}
	}
	return merged
}

// Set sets the property on the first store and removes the property from all
// subsequent stores, so that Get returns value afterward. Set will panic if
// len(sset) == 0.
//
// If sset[0] == nil, Set allocates a new Store. Any other nil stores in the
// set will be ignored.
func (sset StoreSet) Set(section, key, value string) {
	if sset[0] == nil {
		sset[0] = new(Store)
	}
	sset[0].Set(section, key, value)
	sset[1:].RemoveKey(section, trim(key))
}

// RemoveKey removes the key from the section in every store. Nil elements of
// the set are ignored.
func (sset StoreSet) RemoveKey(section, key string) {
	for _, s := range sset {
		if s != nil {
			s.RemoveKey(section, key)
		}
	}
}
