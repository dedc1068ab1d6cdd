package workspace

import "github.com/dropDatabas3/workhub/internal/domain/repository"

// AppItem es la proyección pública de una app.
// Timestamps en unix seconds.
type AppItem struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Mode                string  `json:"mode"`
	Icon                *string `json:"icon"`
	IconBackground      *string `json:"icon_background"`
	IconType            *string `json:"icon_type"`
	IsAgent             bool    `json:"is_agent"`
	EnableSite          bool    `json:"enable_site"`
	EnableAPI           bool    `json:"enable_api"`
	APIRpm              int     `json:"api_rpm"`
	APIRph              int     `json:"api_rph"`
	Status              string  `json:"status"`
	CreatedBy           string  `json:"created_by"`
	CreatedAt           int64   `json:"created_at"`
	UpdatedBy           *string `json:"updated_by"`
	UpdatedAt           int64   `json:"updated_at"`
	IsDemo              bool    `json:"is_demo"`
	IsPublic            bool    `json:"is_public"`
	IsUniversal         bool    `json:"is_universal"`
	AppModelConfigID    *string `json:"app_model_config_id"`
	WorkflowID          *string `json:"workflow_id"`
	UseIconAsAnswerIcon bool    `json:"use_icon_as_answer_icon"`
}

// AppFromModel proyecta el modelo de dominio al contrato público.
func AppFromModel(a repository.App) AppItem {
	return AppItem{
		ID:                  a.ID,
		Name:                a.Name,
		Description:         a.Description,
		Mode:                a.Mode,
		Icon:                a.Icon,
		IconBackground:      a.IconBackground,
		IconType:            a.IconType,
		IsAgent:             a.IsAgent(),
		EnableSite:          a.EnableSite,
		EnableAPI:           a.EnableAPI,
		APIRpm:              a.APIRpm,
		APIRph:              a.APIRph,
		Status:              a.Status,
		CreatedBy:           a.CreatedBy,
		CreatedAt:           a.CreatedAt.Unix(),
		UpdatedBy:           a.UpdatedBy,
		UpdatedAt:           a.UpdatedAt.Unix(),
		IsDemo:              a.IsDemo,
		IsPublic:            a.IsPublic,
		IsUniversal:         a.IsUniversal,
		AppModelConfigID:    a.AppModelConfigID,
		WorkflowID:          a.WorkflowID,
		UseIconAsAnswerIcon: a.UseIconAsAnswerIcon,
	}
}

// AppsFromModels proyecta la lista completa, garantizando slice no nil.
func AppsFromModels(as []repository.App) []AppItem {
	out := make([]AppItem, 0, len(as))
	for _, a := range as {
		out = append(out, AppFromModel(a))
	}
	return out
}
