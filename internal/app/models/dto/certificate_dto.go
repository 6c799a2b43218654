package dto

import "github.com/yigit/facultyhub/internal/app/models"

// UploadCertificateForm holds the multipart fields sent with a certificate file
type UploadCertificateForm struct {
	CertificateName string `form:"certificateName" binding:"required,min=3,max=200" example:"ISO 9001 Auditor"`
	IssueDate       string `form:"issueDate" binding:"required,datetime=2006-01-02" example:"2024-05-01"`
}

// CertificateResponse is an index entry with a link to download the file
type CertificateResponse struct {
	models.CertificateMetadata
	DownloadURL string `json:"downloadUrl"`
}

// CertificateCountResponse reports how many certificates are stored
type CertificateCountResponse struct {
	Count int64 `json:"count" example:"12"`
}
