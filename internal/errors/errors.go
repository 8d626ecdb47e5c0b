package appErrors

import "fmt"

// ErrAccessDenied means the acting user has no (or an insufficient) role on
// the workspace that owns the resource.
type ErrAccessDenied struct {
	UserID      int
	WorkspaceID int
}

func (e *ErrAccessDenied) Error() string {
	return fmt.Sprintf("user %d has no access to workspace %d", e.UserID, e.WorkspaceID)
}

func NewAccessDenied(userID, workspaceID int) error {
	return &ErrAccessDenied{UserID: userID, WorkspaceID: workspaceID}
}

// ErrNotFound is a sentinel error for an absent entity.
type ErrNotFound struct {
	Entity string
	ID     int
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func NewCampaignNotFound(id int) error  { return &ErrNotFound{Entity: "campaign", ID: id} }
func NewEmailNotFound(id int) error     { return &ErrNotFound{Entity: "email", ID: id} }
func NewWorkspaceNotFound(id int) error { return &ErrNotFound{Entity: "workspace", ID: id} }

// ErrKnowledgeBaseMissing means a workspace has no knowledge base yet, so
// email generation cannot run.
type ErrKnowledgeBaseMissing struct {
	WorkspaceID int
}

func (e *ErrKnowledgeBaseMissing) Error() string {
	return fmt.Sprintf("knowledge base not found for workspace %d; set up client information first", e.WorkspaceID)
}

func NewKnowledgeBaseMissing(workspaceID int) error {
	return &ErrKnowledgeBaseMissing{WorkspaceID: workspaceID}
}

// ErrInvalidInput rejects a request before any state is touched.
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string { return e.Reason }

func NewInvalidInput(reason string) error { return &ErrInvalidInput{Reason: reason} }

// ErrGeneration wraps a failure of the generative model call or of the
// validation of its output.
type ErrGeneration struct {
	Reason string
	Err    error
}

func (e *ErrGeneration) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("email generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("email generation failed: %s", e.Reason)
}

func (e *ErrGeneration) Unwrap() error { return e.Err }

func NewGenerationError(reason string, err error) error {
	return &ErrGeneration{Reason: reason, Err: err}
}
