package enums

// ValueView is one member as returned to API consumers.
type ValueView struct {
	Name        string `json:"name"`
	Value       int32  `json:"value"`
	Description string `json:"description"`
}

// SyncRequest selects what a synchronization pass covers.
// Zero values fall back to the sync configuration.
type SyncRequest struct {
	Languages   []string `json:"languages" query:"languages"`
	Type        string   `json:"type" query:"type"`
	KeepOrphans bool     `json:"keep_orphans" query:"keep_orphans"`
	DryRun      bool     `json:"dry_run" query:"dry_run"`
}

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
