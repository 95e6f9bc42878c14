package models

// Hint is a suggested next action attached to a tool response.
type Hint struct {
	Message    string         `json:"message"`
	Tool       string         `json:"tool,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// EnrichedResponse is the uniform envelope every tool returns. On error, Data
// is the zero value of T and Metadata["error_category"] is set.
type EnrichedResponse[T any] struct {
	Data     T              `json:"data"`
	Hints    []Hint         `json:"hints"`
	Error    string         `json:"error,omitempty"`
	Metadata map[string]any `json:"metadata"`
}

// NewEnrichedResponse wraps data with empty hints and metadata, ready for the
// tool layer to append to.
func NewEnrichedResponse[T any](data T) EnrichedResponse[T] {
	return EnrichedResponse[T]{
		Data:     data,
		Hints:    []Hint{},
		Metadata: map[string]any{},
	}
}

// --- Tool input requests ---

type SearchRequest struct {
	Publisher   Publisher
	Year        *int
	Keywords    []string
	DateFrom    string
	DateTo      string
	Title       string
	ActType     string
	PubDateFrom string
	PubDateTo   string
	InForce     *bool
	Limit       *int
	Offset      *int
	DetailLevel DetailLevel
}

type BrowseRequest struct {
	Publisher   Publisher
	Year        int
	Limit       *int
	DetailLevel DetailLevel
}

type ActDetailsRequest struct {
	Eli         string
	LoadContent bool
}

type ReadContentRequest struct {
	Eli     string
	Section string
}

type SearchInActRequest struct {
	Eli          string
	Query        string
	ContextChars int
}

type MetadataRequest struct {
	Category MetadataCategory
}

type RelationshipsRequest struct {
	Eli              string
	RelationshipType string
}

type TrackChangesRequest struct {
	Publisher Publisher
	DateFrom  string
	DateTo    string
	Keywords  []string
}

type DateCalculationRequest struct {
	Days      int
	Months    int
	Years     int
	BaseDate  string
}

type FilterRequest struct {
	ResultSetID string
	Pattern     string
	Field       string
	TypeEquals  string
	StatusEquals string
	YearEquals  *int
	DateField   string
	DateFrom    string
	DateTo      string
	SortBy      string
	SortDesc    bool
	Limit       *int
}

type CompareRequest struct {
	EliA string
	EliB string
}

// --- Tool output payloads ---

type ActSummaryOutput struct {
	Eli              string `json:"eli"`
	Publisher        string `json:"publisher"`
	Year             int    `json:"year"`
	Pos              int    `json:"pos"`
	Title            string `json:"title"`
	Status           string `json:"status"`
	Type             string `json:"type,omitempty"`
	PromulgationDate string `json:"promulgation_date,omitempty"`
	EffectiveDate    string `json:"effective_date,omitempty"`
	InForce          string `json:"in_force,omitempty"`
}

// ToActSummaryOutput formats a domain ActSummary for tool output.
func ToActSummaryOutput(a ActSummary) ActSummaryOutput {
	return ActSummaryOutput{
		Eli:              a.Eli,
		Publisher:        a.Publisher,
		Year:             a.Year,
		Pos:              a.Pos,
		Title:            a.Title,
		Status:           a.Status,
		Type:             a.Type,
		PromulgationDate: a.PromulgationDate,
		EffectiveDate:    a.EffectiveDate,
		InForce:          a.InForce,
	}
}

type SearchOutput struct {
	Results       []ActSummaryOutput `json:"results"`
	TotalCount    int                `json:"total_count"`
	QuerySummary  string             `json:"query_summary"`
	ReturnedCount int                `json:"returned_count"`
	ResultSetID   string             `json:"result_set_id,omitempty"`
}

type ActDetailOutput struct {
	Eli              string         `json:"eli"`
	Publisher        string         `json:"publisher"`
	Year             int            `json:"year"`
	Pos              int            `json:"pos"`
	Title            string         `json:"title"`
	Status           string         `json:"status"`
	Type             string         `json:"type,omitempty"`
	AnnouncementDate string         `json:"announcement_date,omitempty"`
	PromulgationDate string         `json:"promulgation_date,omitempty"`
	EntryIntoForce   string         `json:"entry_into_force,omitempty"`
	ValidFrom        string         `json:"valid_from,omitempty"`
	RepealDate       string         `json:"repeal_date,omitempty"`
	ChangeDate       string         `json:"change_date,omitempty"`
	Keywords         []string       `json:"keywords"`
	References       map[string]any `json:"references,omitempty"`
	Volume           *int           `json:"volume,omitempty"`
	HasPDF           bool           `json:"has_pdf"`
	HasHTML          bool           `json:"has_html"`
	TOC              []map[string]any `json:"toc"`
	IsLoaded         bool           `json:"is_loaded"`
}

type ContentOutput struct {
	Eli         string           `json:"eli"`
	SectionID   string           `json:"section_id,omitempty"`
	SectionTitle string          `json:"section_title"`
	Content     string           `json:"content"`
	TOC         []map[string]any `json:"toc"`
}

type SearchInActOutput struct {
	Eli          string           `json:"eli"`
	Query        string           `json:"query"`
	Matches      []map[string]any `json:"matches"`
	TotalMatches int              `json:"total_matches"`
}

type MetadataOutput struct {
	Category string         `json:"category"`
	Metadata map[string]any `json:"metadata"`
	Count    int            `json:"count"`
}

type RelationshipsOutput struct {
	Eli              string         `json:"eli"`
	RelationshipType string         `json:"relationship_type,omitempty"`
	Relationships    map[string]any `json:"relationships"`
	TotalCount       int            `json:"total_count"`
}

type ChangesOutput struct {
	DateRange   string             `json:"date_range"`
	Publisher   string             `json:"publisher"`
	Keywords    []string           `json:"keywords"`
	Changes     []ActSummaryOutput `json:"changes"`
	TotalCount  int                `json:"total_count"`
	ResultSetID string             `json:"result_set_id,omitempty"`
}

type FilterOutput struct {
	SourceResultSetID string             `json:"source_result_set_id"`
	ResultSetID       string             `json:"result_set_id,omitempty"`
	Results           []ActSummaryOutput `json:"results"`
	OriginalCount     int                `json:"original_count"`
	FilteredCount     int                `json:"filtered_count"`
	FiltersApplied    map[string]any     `json:"filters_applied"`
}

type DateOutput struct {
	BaseDate       string `json:"base_date"`
	CalculatedDate string `json:"calculated_date"`
	DaysOffset     int    `json:"days_offset"`
	MonthsOffset   int    `json:"months_offset"`
	YearsOffset    int    `json:"years_offset"`
	Description    string `json:"description"`
}

type ResultSetInfo struct {
	ResultSetID  string `json:"result_set_id"`
	QuerySummary string `json:"query_summary"`
	ResultCount  int    `json:"result_count"`
	TotalCount   int    `json:"total_count"`
	CreatedAt    string `json:"created_at"`
}

type ResultSetListOutput struct {
	Sets  []ResultSetInfo `json:"sets"`
	Count int             `json:"count"`
}

type LoadedDocumentInfo struct {
	Eli          string `json:"eli"`
	SizeBytes    int    `json:"size_bytes"`
	SectionCount int    `json:"section_count"`
	LoadedAt     string `json:"loaded_at"`
	LastAccessed string `json:"last_accessed"`
}

type LoadedDocumentListOutput struct {
	Documents []LoadedDocumentInfo `json:"documents"`
	Count     int                  `json:"count"`
}

type CompareOutput struct {
	EliA           string         `json:"eli_a"`
	EliB           string         `json:"eli_b"`
	Comparison     map[string]any `json:"comparison"`
	CommonKeywords []string       `json:"common_keywords"`
	Differences    []string       `json:"differences"`
}
