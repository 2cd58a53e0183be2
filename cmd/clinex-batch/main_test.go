package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/medrecord-tools/clinex/internal/ingest"
)

func TestDocumentIDsSkipsUnusableResults(t *testing.T) {
	good := uuid.New()

	ids := documentIDs([]ingest.IngestionResult{
		{DocumentID: good.String()},
		{DocumentID: "not-a-uuid"},
		{DocumentID: ""},
		{DocumentID: uuid.New().String(), Err: "read failed"},
	})

	assert.Equal(t, []uuid.UUID{good}, ids)
}

func TestDocumentIDsEmptyInput(t *testing.T) {
	assert.Empty(t, documentIDs(nil))
}
