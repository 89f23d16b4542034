package schema

// StudiosTable represents the 'studios' table
type StudiosTable struct {
	Table string
	ID    string
	Name  string
}

// Studios is the schema definition for studios
var Studios = StudiosTable{
	Table: "studios",
	ID:    "id",
	Name:  "name",
}
