package types

// Note is one bearer token read from the input file. Line is the 1-based
// line number in the source file, kept so encoding failures and the run
// manifest can point back at the original row.
type Note struct {
	Line  int
	Token string
}
