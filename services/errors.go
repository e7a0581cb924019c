package services

import "fmt"

// NotFoundError reports a lookup by primary key that matched no row. Every
// entity service returns it from FindOne, Update and Delete.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}
