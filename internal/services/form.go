package services

import (
	"strings"

	"dbforge/internal/models"
)

// FormFields is the raw state of the generator form as the user typed it.
type FormFields struct {
	ConnectionURL      string `json:"connectionUrl"`
	Username           string `json:"username"`
	Password           string `json:"password"`
	TargetProjectPath  string `json:"targetProjectPath"`
	EntityPackageName  string `json:"entityPackageName"`
	ServicePackageName string `json:"servicePackageName"`
	AuthorName         string `json:"authorName"`
	Tables             string `json:"tables"`
	Domains            string `json:"domains"`
}

// FieldsFromConfig fills the form from a stored configuration.
func FieldsFromConfig(cfg models.GeneratorConfig) FormFields {
	return FormFields{
		ConnectionURL:      cfg.ConnectionURL,
		Username:           cfg.Username,
		Password:           cfg.Password,
		TargetProjectPath:  cfg.TargetProjectPath,
		EntityPackageName:  cfg.EntityPackageName,
		ServicePackageName: cfg.ServicePackageName,
		AuthorName:         cfg.AuthorName,
		Tables:             cfg.Tables.String(),
		Domains:            cfg.Domains.String(),
	}
}

// ValidationError names the first form field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the form and builds a GeneratorConfig. Checks run in a
// fixed order and the first failure is returned.
func Validate(f FormFields) (*models.GeneratorConfig, error) {
	required := []struct {
		field string
		label string
		value string
	}{
		{"connectionUrl", "URL", f.ConnectionURL},
		{"username", "Username", f.Username},
		{"targetProjectPath", "Project Path", f.TargetProjectPath},
		{"authorName", "Author", f.AuthorName},
		{"entityPackageName", "Entity Package", f.EntityPackageName},
		{"servicePackageName", "Service Package", f.ServicePackageName},
		{"password", "Password", f.Password},
		{"tables", "Tables", f.Tables},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, &ValidationError{Field: r.field, Message: r.label + " must not be blank"}
		}
	}

	tables := models.ParseNameList(f.Tables)
	domains := models.ParseNameList(f.Domains)
	if len(tables) != len(domains) {
		return nil, &ValidationError{Field: "domains", Message: "Tables and Domains do not match"}
	}

	return &models.GeneratorConfig{
		ConnectionURL:      strings.TrimSpace(f.ConnectionURL),
		Username:           strings.TrimSpace(f.Username),
		Password:           f.Password,
		TargetProjectPath:  strings.TrimSpace(f.TargetProjectPath),
		EntityPackageName:  strings.TrimSpace(f.EntityPackageName),
		ServicePackageName: strings.TrimSpace(f.ServicePackageName),
		AuthorName:         strings.TrimSpace(f.AuthorName),
		Tables:             tables,
		Domains:            domains,
	}, nil
}
