package entity

// Category agrupa ítems del inventario. ItemCount es un agregado de lectura
// (COUNT sobre inventory_items), no una relación almacenada que sincronizar.
type Category struct {
	ID          string
	Name        string
	Description string
	ItemCount   int
}
