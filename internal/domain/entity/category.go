package entity

import "time"

// Category representa una categoría de la navegación (jerárquica).
type Category struct {
	ID        string
	ParentID  string // vacío si es raíz
	Name      string
	Position  int
	Active    bool
	Visible   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryTreeNode nodo del árbol de navegación tal como lo entrega el loader.
// Children conserva el orden de la navegación.
type CategoryTreeNode struct {
	ID       string
	Name     string
	Children []*CategoryTreeNode
}
