package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ReportRecord is one extracted report of a document, stored as the exact
// JSON object emitted to callers plus its position within the document.
type ReportRecord struct{ ent.Schema }

func (ReportRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "report_records"},
	}
}

func (ReportRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("seq").Positive(),
		field.JSON("payload", json.RawMessage{}),
		field.Time("created_at").Default(time.Now),
	}
}

func (ReportRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("reports").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ReportRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "seq").Unique(),
		index.Fields("document_id", "seq"),
	}
}
