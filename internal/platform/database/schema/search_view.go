package schema

// SearchViewTable represents the 'production_search_view' denormalized view.
//
// One row per production (all three types). Segment rows inherit studio and
// release_date from their parent album; album rows aggregate their segments'
// tag and performer arrays.
type SearchViewTable struct {
	Table        string
	ID           string
	Code         string
	Type         string
	Title        string
	ReleaseDate  string
	Comment      string
	Studio       string
	ParentID     string
	UpdatedAt    string
	SexActs      string
	Styles       string
	Scenarios    string
	BodyTypes    string
	Sources      string
	PerformerIDs string
}

// SearchView is the schema definition for production_search_view
var SearchView = SearchViewTable{
	Table:        "production_search_view",
	ID:           "id",
	Code:         "code",
	Type:         "type",
	Title:        "title",
	ReleaseDate:  "release_date",
	Comment:      "comment",
	Studio:       "studio",
	ParentID:     "parent_id",
	UpdatedAt:    "updated_at",
	SexActs:      "sex_acts",
	Styles:       "styles",
	Scenarios:    "scenarios",
	BodyTypes:    "body_types",
	Sources:      "sources",
	PerformerIDs: "performer_ids",
}

// Columns returns the view columns in scan order.
func (t SearchViewTable) Columns() []string {
	return []string{
		t.ID, t.Code, t.Type, t.Title, t.ReleaseDate, t.Comment, t.Studio,
		t.ParentID, t.UpdatedAt, t.SexActs, t.Styles, t.Scenarios,
		t.BodyTypes, t.Sources, t.PerformerIDs,
	}
}
