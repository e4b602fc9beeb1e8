package dto

import "github.com/fadilmartias/mentor-eval/internal/model"

// CriteriaTemplateInput creates a new version of a named template.
type CriteriaTemplateInput struct {
	Name        string            `json:"name" yaml:"name"`
	Stage       string            `json:"stage" yaml:"stage"`
	Description string            `json:"description" yaml:"description"`
	Criteria    []model.Criterion `json:"criteria" yaml:"criteria"`
	Inactive    bool              `json:"inactive" yaml:"inactive"`
}

// CriteriaTemplateFile is the YAML document accepted by template import.
type CriteriaTemplateFile struct {
	Templates []CriteriaTemplateInput `yaml:"templates"`
}
