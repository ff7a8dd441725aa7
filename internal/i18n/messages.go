package i18n

var defaultMessagesEN = `
	[app_usage]
	other = "Generate commit messages, PR descriptions and issues from your diff"

	[app_description]
	other = "resumate analyzes your changes with AI, splitting large diffs into chunks so no change is left out"

	[analyzing_changes]
	other = "Analyzing changes..."

	[no_staged_changes]
	other = "No staged changes to commit.\nUse 'git add' to stage your changes first"

	[summarizing_chunk]
	other = "Summarizing chunk {{.Current}} of {{.Total}}..."

	[chunk_summary_failed]
	other = "[Summarization failed for: {{.Files}}]"

	[chunks_failed_warning]
	other = "{{.Failed}} of {{.Total}} chunks could not be summarized; the result may be incomplete"

	[summarized_diff_header]
	other = "Summary of changes (diff too large for one call):"

	[factory_already_registered]
	other = "command factory '{{.Name}}' is already registered"

	[invalid_suggestions_count]
	other = "Number of suggestions must be between {{.Min}} and {{.Max}}"

	[commit_created]
	other = "Commit created successfully with message:"

	[select_suggestion]
	other = "Select a suggestion (0 to cancel):"

	[operation_cancelled]
	other = "Operation cancelled"

	[invalid_selection]
	other = "Invalid selection: {{.Value}}"

	[suggest_command_usage]
	other = "Suggest commit messages for the staged changes"

	[suggest_count_flag_usage]
	other = "Number of suggestions to generate"

	[suggest_lang_flag_usage]
	other = "Language for the suggestions (en, es)"

	[pr_command_usage]
	other = "Summarize a pull request and update its description"

	[pr_number_flag_usage]
	other = "Pull request number"

	[pr_updated]
	other = "PR #{{.Number}} updated: {{.Title}}"

	[issue_command_usage]
	other = "Draft an issue from the current changes and create it on GitHub"

	[issue_context_flag_usage]
	other = "Extra context for the issue body"

	[issue_created]
	other = "Issue #{{.Number}} created: {{.URL}}"

	[config_command_usage]
	other = "Manage resumate configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_lang_usage]
	other = "Set the default language"

	[config_set_api_key_usage]
	other = "Set the Gemini API key"

	[config_set_github_usage]
	other = "Set the GitHub owner, repository and token"

	[current_config]
	other = "Current configuration"

	[config_saved]
	other = "Configuration saved"

	[error_missing_api_key]
	other = "Gemini API key is not configured. Run 'resumate config set-api-key <key>'"

	[error_gemini_client]
	other = "Could not create the Gemini client: {{.Error}}"

	[error_generating_content]
	other = "Error generating content: {{.Error}}"

	[error_no_suggestions]
	other = "The model did not return any suggestions"

	[error_no_files]
	other = "No files to analyze"

	[error_invalid_suggestion_count]
	other = "The number of suggestions must be greater than 0"

	[error_fetching_pr]
	other = "Error fetching PR #{{.PRNumber}}: {{.Error}}"

	[error_generating_summary]
	other = "Error generating the summary for PR #{{.PRNumber}}: {{.Error}}"

	[error_updating_pr]
	other = "Error updating PR #{{.PRNumber}}: {{.Error}}"

	[error_creating_issue]
	other = "Error creating the issue: {{.Error}}"

	[error_github_not_configured]
	other = "GitHub is not configured. Run 'resumate config set-github <owner> <repo> <token>'"

	[error_no_changes]
	other = "No changes detected in the repository"
	`

var defaultMessagesES = `
	[app_usage]
	other = "Generá mensajes de commit, descripciones de PR e issues desde tu diff"

	[app_description]
	other = "resumate analiza tus cambios con IA, partiendo diffs grandes en chunks para que ningún cambio quede afuera"

	[analyzing_changes]
	other = "Analizando cambios..."

	[no_staged_changes]
	other = "No hay cambios en staging.\nUsá 'git add' para agregar tus cambios primero"

	[summarizing_chunk]
	other = "Resumiendo chunk {{.Current}} de {{.Total}}..."

	[chunk_summary_failed]
	other = "[Falló el resumen de: {{.Files}}]"

	[chunks_failed_warning]
	other = "{{.Failed}} de {{.Total}} chunks no pudieron resumirse; el resultado puede estar incompleto"

	[summarized_diff_header]
	other = "Resumen de los cambios (el diff no entra en una sola llamada):"

	[factory_already_registered]
	other = "la factory de comando '{{.Name}}' ya está registrada"

	[invalid_suggestions_count]
	other = "La cantidad de sugerencias debe estar entre {{.Min}} y {{.Max}}"

	[commit_created]
	other = "Commit creado con el mensaje:"

	[select_suggestion]
	other = "Elegí una sugerencia (0 para cancelar):"

	[operation_cancelled]
	other = "Operación cancelada"

	[invalid_selection]
	other = "Selección inválida: {{.Value}}"

	[suggest_command_usage]
	other = "Sugiere mensajes de commit para los cambios en staging"

	[suggest_count_flag_usage]
	other = "Cantidad de sugerencias a generar"

	[suggest_lang_flag_usage]
	other = "Idioma de las sugerencias (en, es)"

	[pr_command_usage]
	other = "Resume una pull request y actualiza su descripción"

	[pr_number_flag_usage]
	other = "Número de la pull request"

	[pr_updated]
	other = "PR #{{.Number}} actualizado: {{.Title}}"

	[issue_command_usage]
	other = "Redacta un issue desde los cambios actuales y lo crea en GitHub"

	[issue_context_flag_usage]
	other = "Contexto extra para el cuerpo del issue"

	[issue_created]
	other = "Issue #{{.Number}} creado: {{.URL}}"

	[config_command_usage]
	other = "Gestiona la configuración de resumate"

	[config_show_usage]
	other = "Muestra la configuración actual"

	[config_set_lang_usage]
	other = "Define el idioma por defecto"

	[config_set_api_key_usage]
	other = "Define la API key de Gemini"

	[config_set_github_usage]
	other = "Define el owner, repositorio y token de GitHub"

	[current_config]
	other = "Configuración actual"

	[config_saved]
	other = "Configuración guardada"

	[error_missing_api_key]
	other = "La API key de Gemini no está configurada. Ejecutá 'resumate config set-api-key <key>'"

	[error_gemini_client]
	other = "No se pudo crear el cliente de Gemini: {{.Error}}"

	[error_generating_content]
	other = "Error al generar contenido: {{.Error}}"

	[error_no_suggestions]
	other = "El modelo no devolvió sugerencias"

	[error_no_files]
	other = "No hay archivos para analizar"

	[error_invalid_suggestion_count]
	other = "La cantidad de sugerencias debe ser mayor que 0"

	[error_fetching_pr]
	other = "Error al obtener el PR #{{.PRNumber}}: {{.Error}}"

	[error_generating_summary]
	other = "Error al generar el resumen del PR #{{.PRNumber}}: {{.Error}}"

	[error_updating_pr]
	other = "Error al actualizar el PR #{{.PRNumber}}: {{.Error}}"

	[error_creating_issue]
	other = "Error al crear el issue: {{.Error}}"

	[error_github_not_configured]
	other = "GitHub no está configurado. Ejecutá 'resumate config set-github <owner> <repo> <token>'"

	[error_no_changes]
	other = "No se detectaron cambios en el repositorio"
	`
