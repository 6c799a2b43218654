package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/middleware"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

// CertificateController handles certificate files of faculty members
type CertificateController struct {
	certificateService *services.CertificateService
	basePath           string
}

// NewCertificateController creates a new CertificateController. basePath prefixes download links.
func NewCertificateController(certificateService *services.CertificateService, basePath string) *CertificateController {
	return &CertificateController{certificateService: certificateService, basePath: basePath}
}

func (c *CertificateController) response(entry models.CertificateMetadata) dto.CertificateResponse {
	return dto.CertificateResponse{
		CertificateMetadata: entry,
		DownloadURL:         fmt.Sprintf("%s/faculty-members/%s/certificates/%s", c.basePath, entry.FacultyID, entry.FileName),
	}
}

// UploadCertificate stores a certificate file
// @Summary Upload certificate
// @Description Uploads a certificate file (pdf, jpg, jpeg, png, doc, docx, at most 5 MB) and indexes it
// @Tags certificates
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Param certificateName formData string true "Certificate name"
// @Param issueDate formData string true "Issue date (YYYY-MM-DD)"
// @Param file formData file true "Certificate file"
// @Success 201 {object} dto.APIResponse{data=dto.CertificateResponse} "Certificate uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid form or file type"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Router /faculty-members/{id}/certificates [post]
func (c *CertificateController) UploadCertificate(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	facultyID, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}

	var form dto.UploadCertificateForm
	if !middleware.BindForm(ctx, &form) {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIErrorWithTitle(ctx, apperrors.NewValidationError("A certificate file is required"), "Upload failed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIErrorWithTitle(ctx, fmt.Errorf("error opening uploaded file: %w", err), "Upload failed")
		return
	}
	defer file.Close()

	entry, err := c.certificateService.Upload(ctx.Request.Context(), p, &services.CertificateUpload{
		FacultyID:       facultyID,
		CertificateName: form.CertificateName,
		IssueDate:       form.IssueDate,
		FileName:        fileHeader.Filename,
		Size:            fileHeader.Size,
		Content:         file,
	})
	if err != nil {
		middleware.HandleAPIErrorWithTitle(ctx, err, "Upload failed")
		return
	}

	notifyOK(ctx, http.StatusCreated, c.response(*entry), "Certificate uploaded", entry.CertificateName+" has been uploaded.")
}

// ListCertificates lists the certificates of a faculty member
// @Summary List certificates
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]dto.CertificateResponse} "Certificates"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty-members/{id}/certificates [get]
func (c *CertificateController) ListCertificates(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	facultyID, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}

	entries, err := c.certificateService.List(ctx.Request.Context(), p, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.CertificateResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, c.response(e))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(out, ""))
}

// DownloadCertificate streams a certificate file
// @Summary Download certificate
// @Tags certificates
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Param fileName path string true "Stored file name"
// @Success 200 {file} file "Certificate file"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Certificate not found"
// @Router /faculty-members/{id}/certificates/{fileName} [get]
func (c *CertificateController) DownloadCertificate(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	facultyID, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}
	fileName := ctx.Param("fileName")

	rc, info, err := c.certificateService.Download(ctx.Request.Context(), p, facultyID, fileName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer rc.Close()

	ctx.DataFromReader(http.StatusOK, info.Size, info.ContentType, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", fileName),
	})
}

// DeleteCertificate removes a certificate file and its index entry
// @Summary Delete certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty member ID" Format(uuid)
// @Param fileName path string true "Stored file name"
// @Success 200 {object} dto.APIResponse "Certificate deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Certificate not found"
// @Router /faculty-members/{id}/certificates/{fileName} [delete]
func (c *CertificateController) DeleteCertificate(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	facultyID, ok := uuidParam(ctx, "id", "Faculty member")
	if !ok {
		return
	}

	if err := c.certificateService.Delete(ctx.Request.Context(), p, facultyID, ctx.Param("fileName")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	notifyOK(ctx, http.StatusOK, nil, "Certificate deleted", "The certificate has been deleted.")
}
