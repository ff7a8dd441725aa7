package gemini

// Templates para el resumen de chunks del diff
const (
	chunkPromptTemplateEN = `Summarize the following portion of a larger git diff.
	Describe, in a few bullet points, what changed and why it matters.
	Be concise: this summary will be combined with summaries of the other
	portions and fed to another model call.

	Diff portion:
	%s`

	chunkPromptTemplateES = `Resumí la siguiente porción de un diff de git más grande.
	Describí, en pocos bullets, qué cambió y por qué importa.
	Sé conciso: este resumen se combina con los resúmenes de las otras
	porciones y alimenta otra llamada al modelo.

	Porción del diff:
	%s`
)

// Templates para sugerencias de commit
const (
	commitPromptTemplateEN = `
	Instructions:
	1. Generate %d commit message suggestions based on the provided changes.
	2. Use appropriate commit types:
		- feat: New features
		- fix: Bug fixes
		- refactor: Code restructuring
		- test: Adding or modifying tests
		- docs: Documentation updates
		- chore: Maintenance tasks
	3. Keep commit titles under 100 characters.
	4. Respond ONLY with a JSON array, one object per suggestion, with fields:
		"commit_title", "explanation", "files".

	Modified files:
	%s

	Changes:
	%s`

	commitPromptTemplateES = `
	Instrucciones:
	1. Generá %d sugerencias de mensaje de commit basadas en los cambios provistos.
	2. Usá tipos de commit apropiados:
		- feat: funcionalidades nuevas
		- fix: corrección de bugs
		- refactor: reestructuración de código
		- test: tests nuevos o modificados
		- docs: documentación
		- chore: mantenimiento
	3. Mantené los títulos por debajo de 100 caracteres.
	4. Respondé SOLO con un array JSON, un objeto por sugerencia, con campos:
		"commit_title", "explanation", "files".

	Archivos modificados:
	%s

	Cambios:
	%s`
)

// Templates para Pull Requests
const (
	prPromptTemplateEN = `Hey, could you whip up a summary for this PR?
	Respond ONLY with a JSON object with fields:
	"title" (max 80 chars, e.g. "fix: Image loading error"),
	"body" (markdown: the 3 main changes, purpose of each, technical impact),
	"labels" (array, options: feature, fix, refactor, docs, infra, test).

	PR Content:
	%s

	Thanks a bunch, you rock!`

	prPromptTemplateES = `Che, armame un resumen de este PR.
	Respondé SOLO con un objeto JSON con campos:
	"title" (máx 80 caracteres, ej: "fix: Error al cargar imágenes"),
	"body" (markdown: los 3 cambios principales, el propósito de cada uno, impacto técnico),
	"labels" (array, opciones: feature, fix, refactor, docs, infra, test).

	Contenido del PR:
	%s

	¡Gracias máquina!`
)

// Templates para issues
const (
	issuePromptTemplateEN = `Draft a GitHub issue from this summary of code changes.
	Respond ONLY with a JSON object with fields "title", "body" (markdown)
	and "labels" (array, options: feature, fix, refactor, docs, infra, test).

	Summary of changes:
	%s

	Extra context from the author:
	%s`

	issuePromptTemplateES = `Redactá un issue de GitHub desde este resumen de cambios de código.
	Respondé SOLO con un objeto JSON con campos "title", "body" (markdown)
	y "labels" (array, opciones: feature, fix, refactor, docs, infra, test).

	Resumen de cambios:
	%s

	Contexto extra del autor:
	%s`
)

func chunkPromptTemplate(locale string) string {
	if locale == "es" {
		return chunkPromptTemplateES
	}
	return chunkPromptTemplateEN
}

func commitPromptTemplate(locale string) string {
	if locale == "es" {
		return commitPromptTemplateES
	}
	return commitPromptTemplateEN
}

func prPromptTemplate(locale string) string {
	if locale == "es" {
		return prPromptTemplateES
	}
	return prPromptTemplateEN
}

func issuePromptTemplate(locale string) string {
	if locale == "es" {
		return issuePromptTemplateES
	}
	return issuePromptTemplateEN
}
