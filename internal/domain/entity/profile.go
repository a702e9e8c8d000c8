package entity

// ErrorKind distingue erros rejeitados pelo provedor de falhas inesperadas.
type ErrorKind string

const (
	ErrorKindNone       ErrorKind = ""
	ErrorKindProvider   ErrorKind = "provider"
	ErrorKindUnexpected ErrorKind = "unexpected"
)

// ScanStage identifica a etapa em que o processamento de um perfil falhou.
type ScanStage string

const (
	StageIdentity ScanStage = "identity"
	StageListing  ScanStage = "listing"
)

// ProfileResult represents the outcome of scanning a single AWS profile.
// A failed profile carries no records.
type ProfileResult struct {
	Profile   string         `json:"profile"`
	AccountID string         `json:"account_id,omitempty"`
	Records   []BucketRecord `json:"records"`
	Success   bool           `json:"success"`
	Stage     ScanStage      `json:"stage,omitempty"`
	ErrorKind ErrorKind      `json:"error_kind,omitempty"`
	Error     string         `json:"error,omitempty"`
}
