// domain/product.go
package domain

type ProductRepository interface {
	CrudRepository[Product]
}
