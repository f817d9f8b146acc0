package entity

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{
		&Restaurant{},
		&Menu{},
		&Lecture{},
		&Post{},
		&SeedMarker{},
	}
}
