package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestBedFromDocumentSpellings(t *testing.T) {
	snake := json.RawMessage(`{
		"id": "b1",
		"bed_number": "101",
		"room_id": "r1",
		"department_id": "er",
		"status": "occupied",
		"patient_id": "p1",
		"created_at": "2026-01-02T10:00:00Z"
	}`)
	camel := json.RawMessage(`{
		"id": "b1",
		"bedNumber": "101",
		"roomId": "r1",
		"departmentId": "er",
		"status": "occupied",
		"currentPatientId": "p1",
		"createdAt": "2026-01-02T10:00:00Z"
	}`)

	fromSnake, err := BedFromDocument(snake)
	require.NoError(t, err)
	fromCamel, err := BedFromDocument(camel)
	require.NoError(t, err)

	require.Equal(t, fromSnake, fromCamel)
	require.Equal(t, "101", fromSnake.Number)
	require.Equal(t, "er", fromSnake.DepartmentID)
	require.Equal(t, entity.BedStatusOccupied, fromSnake.Status)
	require.Equal(t, "p1", fromSnake.PatientID)
	require.Equal(t, time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC), fromSnake.CreatedAt)
}

func TestBedAssignmentFromDocumentDischargedAt(t *testing.T) {
	open := json.RawMessage(`{"id": "a1", "bed_id": "b1", "patient_id": "p1", "assigned_at": "2026-01-02T10:00:00Z"}`)
	closed := json.RawMessage(`{"id": "a2", "bedId": "b1", "patientId": "p1", "dischargedAt": "2026-01-05T08:00:00Z"}`)

	assignment, err := BedAssignmentFromDocument(open)
	require.NoError(t, err)
	require.Nil(t, assignment.DischargedAt)
	require.True(t, assignment.IsActive())

	assignment, err = BedAssignmentFromDocument(closed)
	require.NoError(t, err)
	require.NotNil(t, assignment.DischargedAt)
	require.False(t, assignment.IsActive())
}

func TestDocumentFieldHandling(t *testing.T) {
	doc, err := ParseDocument(json.RawMessage(`{
		"full_name": "Alice",
		"phone": null,
		"phoneNumber": "555-1001",
		"must_change_password": true,
		"roles": ["nurse", "reception"],
		"updated_at": "not-a-time"
	}`))
	require.NoError(t, err)

	// explicit null falls through to the next spelling
	require.Equal(t, "555-1001", doc.String("phone", "phoneNumber"))
	require.Equal(t, "Alice", doc.String("full_name", "fullName"))
	require.Empty(t, doc.String("missing"))
	require.True(t, doc.Bool("must_change_password", "mustChangePassword"))
	require.Equal(t, []string{"nurse", "reception"}, doc.Strings("roles"))
	require.True(t, doc.Time("updated_at").IsZero())
	require.Nil(t, doc.TimePtr("updated_at"))
}

func TestBedsFromDocuments(t *testing.T) {
	raws := []json.RawMessage{
		json.RawMessage(`{"id": "b1", "number": "101", "status": "available"}`),
		json.RawMessage(`{"id": "b2", "number": "102", "status": "cleaning"}`),
	}

	beds, err := BedsFromDocuments(raws)
	require.NoError(t, err)
	require.Len(t, beds, 2)
	require.Equal(t, entity.BedStatusCleaning, beds[1].Status)

	_, err = BedsFromDocuments([]json.RawMessage{json.RawMessage(`not json`)})
	require.Error(t, err)
}
