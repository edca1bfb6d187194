package flatten

// Status is the classification outcome of a discovered entry.
type Status int

const (
	StatusCandidate  Status = iota // File that passed the path rules and still needs reading.
	StatusDirectory                // Directory that is descended into.
	StatusExcluded                 // Matched an exclusion pattern, or is the output document.
	StatusHidden                   // Name starts with a dot.
	StatusSpecial                  // Neither a regular file nor a directory.
	StatusTooLarge                 // Above the size limit.
	StatusBinary                   // NUL byte in the first 512 bytes, or the sniff failed.
	StatusUnreadable               // Content could not be read or decoded.
	StatusEmpty                    // Decoded to an empty string.
	StatusIncluded                 // Written to the output document.
)

var statusNames = [...]string{
	StatusCandidate:  "candidate",
	StatusDirectory:  "directory",
	StatusExcluded:   "excluded",
	StatusHidden:     "hidden",
	StatusSpecial:    "special",
	StatusTooLarge:   "too-large",
	StatusBinary:     "binary",
	StatusUnreadable: "unreadable",
	StatusEmpty:      "empty",
	StatusIncluded:   "included",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Entry is a filesystem path reached during traversal.
type Entry struct {
	Path     string // Absolute path on disk.
	RelPath  string // Path relative to the root, forward slashes.
	IsDir    bool
	Status   Status
	Content  string // Decoded text, set only for included files.
	Encoding string // Name of the decoder that produced Content.
}

// Summary counts entries by final status for one run.
type Summary struct {
	Output string
	Counts map[Status]int
}

// Included returns the number of files written to the output document.
func (s Summary) Included() int {
	return s.Counts[StatusIncluded]
}

// Skipped returns the number of files and directories left out of the
// output document for any reason.
func (s Summary) Skipped() int {
	skipped := 0
	for status, n := range s.Counts {
		if status != StatusIncluded && status != StatusDirectory {
			skipped += n
		}
	}
	return skipped
}
