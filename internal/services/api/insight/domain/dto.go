// Package domain holds DTOs for insight http and service contracts
package domain

// RepoInsight pairs a repository with its generated summary
type RepoInsight struct {
	RepoName string `json:"repoName" example:"hello-world"`
	Summary  string `json:"summary"  example:"A starter repository. It demonstrates the basics."`
}

// EditImageInput carries a data-URI image and an instruction prompt
type EditImageInput struct {
	Image    string `json:"image" validate:"required" example:"data:image/png;base64,iVBORw0KGgo..."`
	Prompt   string `json:"prompt" validate:"required,min=1,max=2000" example:"make the sky purple"`
	MimeType string `json:"mimeType,omitempty" example:"image/png"`
}

// EditImageResult is always success shaped, failures land in Result as text
type EditImageResult struct {
	Result string `json:"result" example:"a small logo on a white background"`
}
