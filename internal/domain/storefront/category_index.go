package storefront

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
)

// MaxCategoryDepth profundidad máxima que se recorre; coincide con el límite del loader de navegación.
const MaxCategoryDepth = 99

// CategoryKey clave opaca por dominio: md5_hex(categoryID + "_" + domainID).
// MD5 solo da una clave de longitud fija para el script del cliente, no es un control de integridad.
func CategoryKey(categoryID, domainID string) string {
	sum := md5.Sum([]byte(categoryID + "_" + domainID))
	return hex.EncodeToString(sum[:])
}

type categoryFrame struct {
	node  *entity.CategoryTreeNode
	depth int
}

// BuildCategoryIndex aplana el árbol en preorden (pila explícita) a clave -> categoryID.
// Cada id aparece una sola vez aunque el árbol repita nodos; no se desciende más allá de MaxCategoryDepth.
func BuildCategoryIndex(roots []*entity.CategoryTreeNode, domainID string) map[string]string {
	index := make(map[string]string)
	visited := make(map[string]struct{})

	stack := make([]categoryFrame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, categoryFrame{node: roots[i], depth: 1})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := top.node
		if node == nil {
			continue
		}
		if _, seen := visited[node.ID]; seen {
			continue
		}
		visited[node.ID] = struct{}{}
		index[CategoryKey(node.ID, domainID)] = node.ID

		if top.depth >= MaxCategoryDepth {
			continue
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, categoryFrame{node: node.Children[i], depth: top.depth + 1})
		}
	}
	return index
}
