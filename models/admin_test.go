package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAdminDoc() Document {
	return Document{
		"_id":          "admin-1",
		"email":        "admin@example.com",
		"name":         "Grace",
		"districtName": "Unified District",
		"districtId":   "district-9",
		"role":         "District-Admin",
		"schools":      []interface{}{"Central High"},
		"createdAt":    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestAdminFromDocument(t *testing.T) {
	a, err := AdminFromDocument(validAdminDoc())
	require.NoError(t, err)
	// Role decodes case-insensitively against the closed set.
	assert.Equal(t, RoleDistrictAdmin, a.Role)
	assert.Equal(t, []string{"Central High"}, a.Schools)
}

func TestAdminFromDocumentUnknownRoleFailsDecode(t *testing.T) {
	doc := validAdminDoc()
	doc["role"] = "janitor"

	// Role is a required top-level field: a bad value fails the whole
	// decode rather than dropping silently.
	_, err := AdminFromDocument(doc)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestAdminFromDocumentMissingDistrict(t *testing.T) {
	doc := validAdminDoc()
	delete(doc, "districtId")

	_, err := AdminFromDocument(doc)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestAdminDocumentRoundTrip(t *testing.T) {
	a := Admin{
		ID:           "admin-1",
		Email:        "admin@example.com",
		Name:         "Grace",
		DistrictName: "Unified District",
		DistrictID:   "district-9",
		Role:         RoleSuperAdmin,
		Schools:      []string{"North", "South"},
		CreatedAt:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	decoded, err := AdminFromDocument(a.Document())
	require.NoError(t, err)
	assert.Equal(t, a, decoded)
}
