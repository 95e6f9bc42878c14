package models

import "time"

// ActSummary is one row of a search/browse list. Immutable after
// construction; Eli must always equal Publisher/Year/Pos joined with "/".
type ActSummary struct {
	Eli              string
	Publisher        string
	Year             int
	Pos              int
	Title            string
	Status           string
	Type             string
	PromulgationDate string
	EffectiveDate    string
	InForce          string
}

// NewActSummary builds an ActSummary from an upstream row, computing Eli from
// Publisher/Year/Pos per the invariant Eli = publisher + "/" + year + "/" + pos.
func NewActSummary(u UpstreamActSummary) ActSummary {
	eli := ELI{Publisher: u.Publisher, Year: u.Year, Pos: u.Pos}
	return ActSummary{
		Eli:              eli.String(),
		Publisher:        u.Publisher,
		Year:             u.Year,
		Pos:              u.Pos,
		Title:            u.Title,
		Status:           u.Status,
		Type:             u.Type,
		PromulgationDate: u.Promulgation,
		EffectiveDate:    u.DateEffect,
		InForce:          u.InForce,
	}
}

// ActDetail extends ActSummary with fields only available on the single-act
// endpoint, plus Document Store membership.
type ActDetail struct {
	ActSummary
	AnnouncementDate string
	EntryIntoForce   string
	ValidFrom        string
	RepealDate       string
	ChangeDate       string
	Keywords         []string
	References       map[string]any
	Volume           *int
	HasHTML          bool
	HasPDF           bool
	TOC              []map[string]any
	IsLoaded         bool
}

// Section is a node in a document's table of contents.
type Section struct {
	ID       string
	Title    string
	Level    int
	StartPos int
	EndPos   int
}

// LoadedDocument is a Document Store entry: the canonical Markdown form of an
// act's full text plus its section index.
type LoadedDocument struct {
	Eli          string
	Markdown     string
	Sections     []Section
	SizeBytes    int
	LoadedAt     time.Time
	LastAccessed time.Time
}

// StoredResultSet is a Result Set Store entry: a prior query's result list,
// available for chained in-memory filtering.
type StoredResultSet struct {
	ResultSetID  string
	Results      []ActSummary
	QuerySummary string
	TotalCount   int
	CreatedAt    time.Time
	LastAccessed time.Time
}
