package catalog

import "errors"

var (
	// ErrInvalidCatalog возвращается, когда файл каталога не проходит валидацию
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")

	// ErrReadCatalog возвращается при ошибке чтения или разбора файла каталога
	ErrReadCatalog = errors.New("catalog: failed to read catalog")
)
