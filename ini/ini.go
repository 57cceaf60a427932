// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// A Store is an in-memory INI configuration: a set of named sections, each
// mapping keys to string values. The zero value is an empty store ready to use.
// A Store must not be mutated by multiple goroutines concurrently.
type Store struct {
	sections map[string]map[string]string
}

// Open returns a new store loaded from the file at path. Unlike Load, a failed
// Open never leaves a partially populated store behind.
func Open(path string) (*Store, error) {
	s := new(Store)
	if err := s.Load(path); err != nil {
		return nil, err
	}
	return s, nil
}

// Load parses the file at path into s. Sections not mentioned in the file are
// left alone and keys within mentioned sections are added or overwritten.
//
// If the file cannot be opened, Load returns an *IOError and s is unchanged.
// If the file is malformed, Load returns a *FormatError and s retains every
// property parsed before the offending line.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load ini file: %w", newIOError("open", path, err))
	}
	err = s.parse(f)
	f.Close() // Close errors irrelevant.
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return fmt.Errorf("load ini file: %w", err)
	}
	return nil
}

// Parse reads INI text from r into s with the same rules and partial-update
// semantics as Load.
//
// See the Syntax section in the package documentation for the format recognized
// by Parse.
func (s *Store) Parse(r io.Reader) error {
	if err := s.parse(r); err != nil {
		return fmt.Errorf("parse ini: %w", err)
	}
	return nil
}

func (s *Store) parse(r io.Reader) error {
	br := bufio.NewReader(r)
	var current string
	for lineno := 1; ; lineno++ {
		line, err := br.ReadString('\n')
		if err == io.EOF {
			if line == "" {
				return nil
			}
		} else if err != nil {
			return newIOError("read", "", err)
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}
		if line[0] == '[' && line[len(line)-1] == ']' {
			name := line[1 : len(line)-1]
			if name == "" {
				return &FormatError{Line: lineno, Text: line, Reason: "empty section name"}
			}
			current = name
			continue
		}
		i := strings.IndexByte(line, '=')
		if i == -1 {
			return &FormatError{Line: lineno, Text: line, Reason: "invalid line format"}
		}
		if current == "" {
			return &FormatError{Line: lineno, Text: line, Reason: "key-value pair outside section"}
		}
		s.table(current)[trim(line[:i])] = trim(line[i+1:])
	}
}

// Save writes s to the file at path, creating or truncating it. The output
// format is described in MarshalText.
func (s *Store) Save(path string) error {
	data := s.marshal()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save ini file: %w", newIOError("create", path, err))
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("save ini file: %w", newIOError("write", path, err))
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save ini file: %w", newIOError("close", path, err))
	}
	return nil
}

// WriteTo writes the serialized form of s to w.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.marshal())
	if err != nil {
		return int64(n), &IOError{Op: "write", Err: err}
	}
	return int64(n), nil
}

// MarshalText serializes s in INI format. Sections appear in lexical order,
// each as a "[name]" header followed by its properties in lexical key order
// as "key = value" and a blank line. Keys and values are trimmed of spaces and
// tabs on output. No escaping is performed, so values containing newlines or
// starting with '[' will not survive a round trip.
func (s *Store) MarshalText() ([]byte, error) {
	return s.marshal(), nil
}

func (s *Store) marshal() []byte {
	if s == nil {
		return nil
	}
	var buf []byte
	for _, name := range s.Sections() {
		buf = append(buf, '[')
		buf = append(buf, name...)
		buf = append(buf, "]\n"...)
		table := s.sections[name]
		for _, k := range sortedKeys(table) {
			buf = append(buf, trim(k)...)
			buf = append(buf, " = "...)
			buf = append(buf, trim(table[k])...)
			buf = append(buf, '\n')
		}
		buf = append(buf, '\n')
	}
	return buf
}

// Get returns the value of key in section. The key must match the stored key
// exactly. If either is absent, Get returns a *NotFoundError.
func (s *Store) Get(section, key string) (string, error) {
	if s == nil {
		return "", &NotFoundError{Section: section, Key: key, MissingSection: true}
	}
	table, ok := s.sections[section]
	if !ok {
		return "", &NotFoundError{Section: section, Key: key, MissingSection: true}
	}
	v, ok := table[key]
	if !ok {
		return "", &NotFoundError{Section: section, Key: key}
	}
	return v, nil
}

// HasSection reports whether s has a section with the given name, even if it
// is empty.
func (s *Store) HasSection(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.sections[name]
	return ok
}

// Sections returns the names of the sections in s in lexical order.
func (s *Store) Sections() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.sections))
	for name := range s.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Section returns a copy of the properties in the named section or nil if the
// section does not exist.
func (s *Store) Section(name string) map[string]string {
	if s == nil {
		return nil
	}
	table, ok := s.sections[name]
	if !ok {
		return nil
	}
	result := make(map[string]string, len(table))
	for k, v := range table {
		result[k] = v
	}
	return result
}

// Set sets key in section to value, creating the section if necessary. The key
// is trimmed of surrounding spaces and tabs; the value is stored verbatim.
func (s *Store) Set(section, key, value string) {
	s.table(section)[trim(key)] = value
}

// AddSection creates an empty section. If the section already exists, all of
// its properties are removed.
func (s *Store) AddSection(section string) {
	if s.sections == nil {
		s.sections = make(map[string]map[string]string)
	}
	s.sections[section] = make(map[string]string)
}

// RemoveSection deletes a section and all its properties. It is a no-op if the
// section does not exist.
func (s *Store) RemoveSection(section string) {
	delete(s.sections, section)
}

// RemoveKey deletes key from section. The key must match the stored key
// exactly. It is a no-op if the section or key does not exist.
func (s *Store) RemoveKey(section, key string) {
	delete(s.sections[section], key)
}

// table returns the named section's map, creating it if necessary.
func (s *Store) table(section string) map[string]string {
	if s.sections == nil {
		s.sections = make(map[string]map[string]string)
	}
	table := s.sections[section]
	if table == nil {
		table = make(map[string]string)
		s.sections[section] = table
	}
	return table
}

// trim removes leading and trailing ASCII spaces and tabs.
func trim(s string) string {
	return strings.Trim(s, " \t")
}

func newIOError(op, path string, err error) *IOError {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &IOError{Op: op, Path: path, Err: err}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
