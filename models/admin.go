package models

import "time"

// Admin is a district or school administrator. Accounts are provisioned
// out-of-band; this service only reads them and edits the school list.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	DistrictName string    `json:"districtName"`
	DistrictID   string    `json:"districtId"`
	Role         AdminRole `json:"role"`
	Schools      []string  `json:"schools"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a Admin) Document() Document {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	doc := Document{
		"_id":          a.ID,
		"email":        a.Email,
		"name":         a.Name,
		"districtName": a.DistrictName,
		"districtId":   a.DistrictID,
		"role":         string(a.Role),
		"createdAt":    createdAt,
	}
	if a.Schools != nil {
		doc["schools"] = toInterfaceSlice(a.Schools)
	}
	return doc
}

// AdminFromDocument decodes a stored admin. The role is a required
// top-level enum: an unrecognized value fails the whole decode.
func AdminFromDocument(doc Document) (Admin, error) {
	var a Admin
	var ok bool
	if a.ID, ok = docString(doc, "_id"); !ok {
		return Admin{}, missingField("admin", "_id")
	}
	if a.Email, ok = docString(doc, "email"); !ok {
		return Admin{}, missingField("admin", "email")
	}
	if a.Name, ok = docString(doc, "name"); !ok {
		return Admin{}, missingField("admin", "name")
	}
	if a.DistrictName, ok = docString(doc, "districtName"); !ok {
		return Admin{}, missingField("admin", "districtName")
	}
	if a.DistrictID, ok = docString(doc, "districtId"); !ok {
		return Admin{}, missingField("admin", "districtId")
	}
	rawRole, ok := docString(doc, "role")
	if !ok {
		return Admin{}, missingField("admin", "role")
	}
	if a.Role, ok = ParseAdminRole(rawRole); !ok {
		return Admin{}, missingField("admin", "role")
	}
	if a.CreatedAt, ok = docTime(doc, "createdAt"); !ok {
		return Admin{}, missingField("admin", "createdAt")
	}
	if schools, ok := docStringSlice(doc, "schools"); ok {
		a.Schools = schools
	} else {
		a.Schools = []string{}
	}
	return a, nil
}
