package request

import "arclean_orcamentos/internal/domain/entities"

type CompanyRequest struct {
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	LogoDataURL string `json:"logoDataUrl"`
}

func (r CompanyRequest) ToEntity() entities.Company {
	return entities.Company(r)
}

type SettingsRequest struct {
	Currency       string `json:"currency"`
	NextOsSequence int    `json:"nextOsSequence" binding:"required,gte=1"`
	PDFTemplate    string `json:"pdfTemplate"`
}

func (r SettingsRequest) ToEntity() entities.Settings {
	return entities.Settings(r)
}
