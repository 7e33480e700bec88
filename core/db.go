package core

// DBOrdering is one "field" or "-field" term of a list ordering.
type DBOrdering struct {
	Field     string
	Ascending bool
}
