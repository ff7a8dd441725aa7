package models

type (
	// IssueRequest es el contexto que recibe la IA para redactar un issue.
	IssueRequest struct {
		Summary     string
		Description string
		Labels      []string
	}

	// IssueContent es el texto de issue generado por la IA.
	IssueContent struct {
		Title  string   `json:"title"`
		Body   string   `json:"body"`
		Labels []string `json:"labels"`
	}

	// Issue representa un issue ya creado en el proveedor VCS.
	Issue struct {
		Number int
		Title  string
		URL    string
	}
)
