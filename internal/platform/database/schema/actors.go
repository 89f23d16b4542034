package schema

// ActorsTable represents the 'actors' table
type ActorsTable struct {
	Table    string
	ID       string
	ActorTag string
	GvdbID   string
	Notes    string
}

// Actors is the schema definition for actors
var Actors = ActorsTable{
	Table:    "actors",
	ID:       "id",
	ActorTag: "actor_tag",
	GvdbID:   "gvdb_id",
	Notes:    "notes",
}

// StageNamesTable represents the 'stage_names' table
type StageNamesTable struct {
	Table     string
	ID        string
	ActorID   string
	StudioID  string
	StageName string
}

// StageNames is the schema definition for stage_names
var StageNames = StageNamesTable{
	Table:     "stage_names",
	ID:        "id",
	ActorID:   "actor_id",
	StudioID:  "studio_id",
	StageName: "stage_name",
}
