package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
	"github.com/jhoicas/tweakwise-api/internal/domain/repository"
)

var _ repository.NavigationLoader = (*CategoryRepo)(nil)

// CategoryRepo carga la navegación de categorías activas y visibles.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Load devuelve los hijos de rootCategoryID con sus descendientes hasta depth niveles.
// El CTE corta por profundidad, así que termina aunque los datos tengan un ciclo.
func (r *CategoryRepo) Load(ctx context.Context, rootCategoryID string, depth int) ([]*entity.CategoryTreeNode, error) {
	if rootCategoryID == "" || depth <= 0 {
		return nil, nil
	}
	query := `
		WITH RECURSIVE nav AS (
			SELECT c.id, c.parent_id, c.name, c.position, 1 AS depth
			FROM categories c
			WHERE c.parent_id = $1 AND c.active AND c.visible
			UNION ALL
			SELECT c.id, c.parent_id, c.name, c.position, nav.depth + 1
			FROM categories c
			JOIN nav ON c.parent_id = nav.id
			WHERE nav.depth < $2 AND c.active AND c.visible
		)
		SELECT id::text, parent_id::text, name, depth FROM nav ORDER BY depth, position, name, id`
	rows, err := r.q.Query(ctx, query, rootCategoryID, depth)
	if err != nil {
		return nil, fmt.Errorf("load navigation: %w", err)
	}
	defer rows.Close()

	var navRows []navigationRow
	for rows.Next() {
		var row navigationRow
		if err := rows.Scan(&row.ID, &row.ParentID, &row.Name, &row.Depth); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		navRows = append(navRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load navigation: %w", err)
	}
	return buildNavigationTree(rootCategoryID, navRows, depth), nil
}

// navigationRow fila del CTE de navegación.
type navigationRow struct {
	ID       string
	ParentID string
	Name     string
	Depth    int
}

// buildNavigationTree arma el árbol a partir de filas ordenadas por profundidad.
// Ignora ids repetidos, filas por debajo de maxDepth y huérfanos cuyo padre no llegó antes.
func buildNavigationTree(rootCategoryID string, rows []navigationRow, maxDepth int) []*entity.CategoryTreeNode {
	var roots []*entity.CategoryTreeNode
	nodes := make(map[string]*entity.CategoryTreeNode, len(rows))
	for _, row := range rows {
		if row.Depth > maxDepth || row.ID == rootCategoryID {
			continue
		}
		if _, seen := nodes[row.ID]; seen {
			continue
		}
		if row.ParentID == rootCategoryID {
			n := &entity.CategoryTreeNode{ID: row.ID, Name: row.Name}
			nodes[row.ID] = n
			roots = append(roots, n)
			continue
		}
		parent, ok := nodes[row.ParentID]
		if !ok {
			continue
		}
		n := &entity.CategoryTreeNode{ID: row.ID, Name: row.Name}
		nodes[row.ID] = n
		parent.Children = append(parent.Children, n)
	}
	return roots
}
