package workspace

import "github.com/dropDatabas3/workhub/internal/domain/repository"

// DatasetItem es la proyección pública de un dataset.
// Timestamps en unix seconds.
type DatasetItem struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	Permission        string  `json:"permission"`
	Provider          string  `json:"provider"`
	DocumentCount     int     `json:"document_count"`
	IndexingTechnique *string `json:"indexing_technique"`
	CreatedBy         string  `json:"created_by"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedBy         *string `json:"updated_by"`
	UpdatedAt         int64   `json:"updated_at"`
}

// DatasetFromModel proyecta el modelo de dominio al contrato público.
func DatasetFromModel(d repository.Dataset) DatasetItem {
	return DatasetItem{
		ID:                d.ID,
		Name:              d.Name,
		Description:       d.Description,
		Permission:        d.Permission,
		Provider:          d.Provider,
		DocumentCount:     d.DocumentCount,
		IndexingTechnique: d.IndexingTechnique,
		CreatedBy:         d.CreatedBy,
		CreatedAt:         d.CreatedAt.Unix(),
		UpdatedBy:         d.UpdatedBy,
		UpdatedAt:         d.UpdatedAt.Unix(),
	}
}

// DatasetsFromModels proyecta la lista completa, garantizando slice no nil.
func DatasetsFromModels(ds []repository.Dataset) []DatasetItem {
	out := make([]DatasetItem, 0, len(ds))
	for _, d := range ds {
		out = append(out, DatasetFromModel(d))
	}
	return out
}
