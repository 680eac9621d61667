package services

import "errors"

var (
	// ErrCategoryTypeRequired is returned when a category is created with
	// a missing or blank type.
	ErrCategoryTypeRequired = errors.New("category type is required")

	// ErrCategoryExists is returned when a category with the same type
	// already exists. Uniqueness is checked with a pre-insert query, not a
	// database constraint.
	ErrCategoryExists = errors.New("category already exists")
)
