package domain

type CategoryRepository interface {
	CrudRepository[Category]
}
