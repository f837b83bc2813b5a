package ftpkit

import (
	"strings"
)

// EntryKind classifies a single directory entry.
type EntryKind int

// The different kinds of an Entry
const (
	EntryFile EntryKind = iota
	EntryDir
	EntryLink
)

// String returns the lowercase name of the kind.
func (k EntryKind) String() string {
	switch k {
	case EntryDir:
		return "dir"
	case EntryLink:
		return "link"
	default:
		return "file"
	}
}

// Entry is one parsed line of a LIST response.
type Entry struct {
	// Name is the entry name without any directory prefix.
	Name string

	// Kind is the classification derived from the mode field.
	Kind EntryKind

	// Target is the link target for EntryLink entries, empty otherwise.
	Target string

	// Raw is the unmodified line the entry was parsed from.
	Raw string
}

// linkArrow separates a symlink name from its target in Unix-style listings.
const linkArrow = " -> "

// ParseLine parses one raw line of LIST output into an Entry.
//
// The line is split on whitespace; the first character of the mode field
// decides the kind: 'd' is a directory, 'l' is a link, everything else is a
// file. The name is the last whitespace-delimited field, except for links,
// where the portion before the " -> " arrow carries the name and the portion
// after it the target.
//
// Lines without at least a mode field and a name field are unparseable and
// return ok == false. Parsing is pure: the same line always yields the same
// result.
func ParseLine(line string) (entry Entry, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Entry{}, false
	}

	entry = Entry{Raw: line}
	switch fields[0][0] {
	case 'd':
		entry.Kind = EntryDir
	case 'l':
		entry.Kind = EntryLink
	default:
		entry.Kind = EntryFile
	}

	rest := line
	if entry.Kind == EntryLink {
		if name, target, found := strings.Cut(line, linkArrow); found {
			rest = name
			entry.Target = strings.TrimSpace(target)
		}
	}
	nameFields := strings.Fields(rest)
	if len(nameFields) < 2 {
		return Entry{}, false
	}
	entry.Name = nameFields[len(nameFields)-1]
	return entry, true
}

// Listing holds one directory's entries partitioned by kind. The three name
// slices preserve the server's original ordering within each bucket. A
// Listing is rebuilt from scratch on every call and shares no state with the
// connection it came from.
type Listing struct {
	Files       []string
	Directories []string
	Links       []string

	// Entries holds every successfully parsed entry in server order.
	Entries []Entry
}

// Names returns the name bucket for the given kind.
func (l *Listing) Names(kind EntryKind) []string {
	switch kind {
	case EntryDir:
		return l.Directories
	case EntryLink:
		return l.Links
	default:
		return l.Files
	}
}

// partitionLines parses every raw line and partitions the results by kind.
// Unparseable lines are dropped, never misclassified.
func partitionLines(lines []string) *Listing {
	listing := &Listing{}
	for _, line := range lines {
		entry, ok := ParseLine(line)
		if !ok {
			continue
		}
		listing.Entries = append(listing.Entries, entry)
		switch entry.Kind {
		case EntryDir:
			listing.Directories = append(listing.Directories, entry.Name)
		case EntryLink:
			listing.Links = append(listing.Links, entry.Name)
		default:
			listing.Files = append(listing.Files, entry.Name)
		}
	}
	return listing
}
