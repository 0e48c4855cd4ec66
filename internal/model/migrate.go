package model

// All returns every table-backed model in migration-safe order: referenced
// tables first, join tables and dependents after.
func All() []any {
	return []any{
		&User{},
		&Group{},
		&UserGroup{},
		&Topic{},
		&Standard{},
		&Resource{},
		&StandardResource{},
		&Card{},
		&Goal{},
		&GoalResource{},
		&Lap{},
		&Attempt{},
	}
}
