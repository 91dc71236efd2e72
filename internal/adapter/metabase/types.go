package metabase

import (
	"encoding/json"
	"strings"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

// Collection is a folder of cards. ID is nil for the virtual root
// collection, which the API reports with the string id "root".
type Collection struct {
	ID   *int
	Name string
}

// Database is a registered database connection.
type Database struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Engine string `json:"engine"`
}

// Card is a saved question.
type Card struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Display string `json:"display"`
}

// DatasetQuery is the query half of a card.
type DatasetQuery struct {
	Type     string          `json:"type"`
	Database int             `json:"database"`
	Query    json.RawMessage `json:"query"`
}

// CardRequest is the body of a card creation call. A nil CollectionID
// places the card in the root collection.
type CardRequest struct {
	Name                  string         `json:"name"`
	Description           string         `json:"description"`
	DatasetQuery          DatasetQuery   `json:"dataset_query"`
	Display               string         `json:"display"`
	VisualizationSettings map[string]any `json:"visualization_settings"`
	CollectionID          *int           `json:"collection_id"`
}

// DatabaseDetails are the engine connection settings.
type DatabaseDetails struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DBName   string `json:"dbname"`
	User     string `json:"user"`
	Password string `json:"password"`
	SSL      bool   `json:"ssl"`
}

// DatabaseRequest is the body of a database create or update call.
type DatabaseRequest struct {
	Engine  string          `json:"engine"`
	Name    string          `json:"name"`
	Details DatabaseDetails `json:"details"`
}

// Metadata describes a database with its tables.
type Metadata struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Tables []Table `json:"tables"`
}

// Table describes a table and, when requested, its fields.
type Table struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Field describes a column.
type Field struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	BaseType     string `json:"base_type"`
	SemanticType string `json:"semantic_type"`
}

// DisplayFor maps a chart kind to a card display type and its
// visualization settings. Unknown kinds render as a table.
func DisplayFor(kind domain.ChartKind) (string, map[string]any) {
	settings := map[string]any{}

	switch kind {
	case domain.ChartKindBar, domain.ChartKindLine, domain.ChartKindArea,
		domain.ChartKindScatter, domain.ChartKindRadar, domain.ChartKindHeatmap:
		return string(kind), settings
	case domain.ChartKindPie:
		settings["pie.show_legend"] = true
		settings["graph.show_values"] = true
		return "pie", settings
	case domain.ChartKindDonut:
		settings["pie.show_legend"] = true
		settings["graph.show_values"] = true
		settings["pie.type"] = "donut"
		return "pie", settings
	case domain.ChartKindMixed:
		return "bar", settings
	}
	return "table", settings
}

// FindCollection returns the numeric id of the collection called name.
// It returns nil, meaning the root collection, when no collection with that
// name has a numeric id.
func FindCollection(collections []Collection, name string) *int {
	for _, c := range collections {
		if c.Name == name && c.ID != nil {
			id := *c.ID
			return &id
		}
	}
	return nil
}

// NewCardRequest builds the card payload for q against database dbID.
func NewCardRequest(q *domain.Query, dbID int, collectionID *int) CardRequest {
	def := q.Definition
	if len(def) == 0 || string(def) == "null" {
		def = json.RawMessage(`{}`)
	}

	display, settings := DisplayFor(q.ChartKind)
	return CardRequest{
		Name:        strings.TrimSpace(q.Title),
		Description: q.Description,
		DatasetQuery: DatasetQuery{
			Type:     "query",
			Database: dbID,
			Query:    def,
		},
		Display:               display,
		VisualizationSettings: settings,
		CollectionID:          collectionID,
	}
}
