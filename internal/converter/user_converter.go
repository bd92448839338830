package converter

import (
	"encoding/json"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"
)

func UserFromDocument(raw json.RawMessage) (*entity.User, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:                 doc.String("id", "uid"),
		Email:              doc.String("email"),
		FullName:           doc.String("full_name", "fullName", "name", "displayName"),
		Role:               entity.Role(doc.String("role")),
		MustChangePassword: doc.Bool("must_change_password", "mustChangePassword"),
		IsActive:           doc.Bool("is_active", "isActive"),
		CreatedAt:          doc.Time("created_at", "createdAt"),
		UpdatedAt:          doc.Time("updated_at", "updatedAt"),
	}

	for _, r := range doc.Strings("roles") {
		user.Roles = append(user.Roles, entity.Role(r))
	}

	return user, nil
}

func UsersFromDocuments(raws []json.RawMessage) ([]entity.User, error) {
	users := make([]entity.User, 0, len(raws))
	for _, raw := range raws {
		user, err := UserFromDocument(raw)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}
