package model

// All lists every model, in dependency order, for schema creation in tests.
func All() []any {
	return []any{
		&AdminUserModel{},
		&NewsModel{},
		&ProjectModel{},
		&MediaModel{},
	}
}
