package models

type (
	// CommitInfo agrupa la información que recibe el modelo para
	// generar sugerencias de commit.
	CommitInfo struct {
		Files []string
		Diff  string
	}

	// GitChange representa un archivo modificado según git status.
	GitChange struct {
		Path   string
		Status string
	}

	// CommitSuggestion es una sugerencia de mensaje de commit generada por la IA.
	CommitSuggestion struct {
		CommitTitle string   `json:"commit_title"`
		Explanation string   `json:"explanation"`
		Files       []string `json:"files"`
	}
)
