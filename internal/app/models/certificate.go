package models

// CertificateMetadata is one entry of the per faculty metadata.json sidecar in the
// certificates bucket. Field names are part of the stored format.
type CertificateMetadata struct {
	FileName        string `json:"fileName"`
	CertificateName string `json:"certificateName"`
	IssueDate       string `json:"issueDate"`
	UploadDate      string `json:"uploadDate"`
	FacultyID       string `json:"facultyId"`
	FacultyName     string `json:"facultyName"`
}
