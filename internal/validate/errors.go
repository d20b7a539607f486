package validate

import "fmt"

// Kind classifies a directory check failure.
type Kind int

const (
	InvalidCatalogName Kind = iota + 1
	MissingDirectories
	InputStatUnavailable
	InputDirectoryInvalid
	OutputStatUnavailable
	OutputDirectoryInvalid
	CatalogAlreadyExists
	CatalogCreationFailed
)

var kindMessages = map[Kind]string{
	InvalidCatalogName:     "Output filename should end with `.xcassets`",
	MissingDirectories:     "Input and output directories must exist",
	InputStatUnavailable:   "Can't check input directory",
	InputDirectoryInvalid:  "Input must be a directory and must be readable",
	OutputStatUnavailable:  "Can't check output directory",
	OutputDirectoryInvalid: "Output must be a directory and must be writeable",
	CatalogAlreadyExists:   "An asset catalog already exists at the destination",
	CatalogCreationFailed:  "Could not create asset catalog at output path",
}

func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("validate.Kind(%d)", int(k))
}

// Error is returned by [Validator.Validate]. Match a kind with errors.Is
// against the Err* sentinels below.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// Sentinels for errors.Is.
var (
	ErrInvalidCatalogName     = &Error{Kind: InvalidCatalogName}
	ErrMissingDirectories     = &Error{Kind: MissingDirectories}
	ErrInputStatUnavailable   = &Error{Kind: InputStatUnavailable}
	ErrInputDirectoryInvalid  = &Error{Kind: InputDirectoryInvalid}
	ErrOutputStatUnavailable  = &Error{Kind: OutputStatUnavailable}
	ErrOutputDirectoryInvalid = &Error{Kind: OutputDirectoryInvalid}
	ErrCatalogAlreadyExists   = &Error{Kind: CatalogAlreadyExists}
	ErrCatalogCreationFailed  = &Error{Kind: CatalogCreationFailed}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
