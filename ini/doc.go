// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a small in-memory store for configuration kept in the
INI file format. See https://en.wikipedia.org/wiki/INI_file.

A Store is loaded from a file, edited in place, and written back as a whole.
Comments and original ordering are not preserved: Save writes sections and
keys in lexical order.

Syntax

An INI file is text split into lines on '\n' (a trailing '\r' is dropped).
Each line is one of:

	; comment            (first character ';' or '#')
	[section]            (first character '[', last character ']')
	key = value          (split on the first '=')

Blank lines are ignored. Comment and header lines are recognized by their very
first and last characters, so leading whitespace turns them into ordinary
lines. The section name is everything between the brackets and must not be
empty. Spaces and tabs around keys and values are removed; no other
whitespace is.

Every property must appear after a section header. When a key appears more
than once in a section, the last value wins. Headers alone do not create
sections: a section with no properties is not present after loading.

Values are not quoted or escaped. Characters like '[', '=', ';' and '#' are
written out as-is and may not read back the same way.

Errors

Operations report three kinds of failure, each a distinct type that can be
recovered with errors.As: *IOError when a file cannot be opened, read or
written, *FormatError when a line is malformed, and *NotFoundError when a
query names a missing section or key.
*/
package ini
