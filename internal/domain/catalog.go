package domain

// CatalogItem — товар каталога, который можно добавить в заказ.
type CatalogItem struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}
